package paint

// TextureMeta is the bookkeeping for one allocated texture.
type TextureMeta struct {
	// Name used for debugging.
	Name string

	// Size in texels.
	Size [2]int

	// BytesPerPixel of the upload format.
	BytesPerPixel int

	// RetainCount: freed when it reaches zero.
	RetainCount int

	Options TextureOptions
}

// BytesUsed by the texture on the GPU.
func (m *TextureMeta) BytesUsed() int {
	return m.Size[0] * m.Size[1] * m.BytesPerPixel
}

// TextureManager tracks the lifetime of managed textures and the
// pending upload work for the renderer. The font atlas is always
// texture 0.
//
// Not safe for concurrent use; wrap it in a mutex when shared.
type TextureManager struct {
	next  uint64
	metas map[uint64]*TextureMeta
	delta TexturesDelta
}

// NewTextureManager returns an empty manager. The first allocation
// receives id 0 and should be the font atlas.
func NewTextureManager() *TextureManager {
	return &TextureManager{metas: map[uint64]*TextureMeta{}}
}

// Alloc registers a new texture and queues its full upload.
func (t *TextureManager) Alloc(name string, image ImageData, options TextureOptions) TextureID {
	id := t.next
	t.next++
	t.metas[id] = &TextureMeta{
		Name:          name,
		Size:          image.Size(),
		BytesPerPixel: image.BytesPerPixel(),
		RetainCount:   1,
		Options:       options,
	}
	tid := ManagedTextureID(id)
	t.delta.Set = append(t.delta.Set, TextureUpload{
		ID:    tid,
		Delta: FullImageDelta(image, options),
	})
	return tid
}

// Set queues an update to an existing texture.
func (t *TextureManager) Set(id TextureID, delta ImageDelta) {
	meta, ok := t.metas[id.Raw()]
	if !ok || id.IsUser() {
		Logger().Warn("set of unknown texture", "id", id.Raw())
		return
	}
	if delta.IsWhole() {
		meta.Size = delta.Image.Size()
		meta.BytesPerPixel = delta.Image.BytesPerPixel()
	}
	t.delta.Set = append(t.delta.Set, TextureUpload{ID: id, Delta: delta})
}

// Free decrements the retain count and queues destruction when it
// reaches zero.
func (t *TextureManager) Free(id TextureID) {
	meta, ok := t.metas[id.Raw()]
	if !ok || id.IsUser() {
		Logger().Warn("free of unknown texture", "id", id.Raw())
		return
	}
	meta.RetainCount--
	if meta.RetainCount <= 0 {
		delete(t.metas, id.Raw())
		t.delta.Free = append(t.delta.Free, id)
	}
}

// Retain increments the retain count so the texture survives an
// extra Free.
func (t *TextureManager) Retain(id TextureID) {
	if meta, ok := t.metas[id.Raw()]; ok {
		meta.RetainCount++
	}
}

// Meta returns the bookkeeping for a texture, or nil.
func (t *TextureManager) Meta(id TextureID) *TextureMeta {
	return t.metas[id.Raw()]
}

// NumAllocated textures.
func (t *TextureManager) NumAllocated() int {
	return len(t.metas)
}

// TakeDelta returns the upload work queued since the last call.
func (t *TextureManager) TakeDelta() TexturesDelta {
	out := t.delta
	t.delta = TexturesDelta{}
	return out
}

// TextureUpload pairs a texture with its pending image change.
type TextureUpload struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is what the renderer must apply before painting a
// frame: uploads in Set order first, then frees after painting.
type TexturesDelta struct {
	Set  []TextureUpload
	Free []TextureID
}

// IsEmpty reports whether there is no pending work.
func (d TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}

// Append moves the work of newer into d.
func (d *TexturesDelta) Append(newer TexturesDelta) {
	d.Set = append(d.Set, newer.Set...)
	d.Free = append(d.Free, newer.Free...)
}
