package framebuffer

// DoubleBuffer keeps the buffer being rendered separate from the one being
// presented. Only the frame driver calls Swap, and only after every render
// worker has returned.
type DoubleBuffer struct {
	front *Framebuffer
	back  *Framebuffer
}

func NewDoubleBuffer(width, height int) (*DoubleBuffer, error) {
	front, err := New(width, height)
	if err != nil {
		return nil, err
	}
	back, err := New(width, height)
	if err != nil {
		return nil, err
	}
	return &DoubleBuffer{front: front, back: back}, nil
}

// Back is the buffer the renderer writes into.
func (d *DoubleBuffer) Back() *Framebuffer { return d.back }

// Front is the last completed frame.
func (d *DoubleBuffer) Front() *Framebuffer { return d.front }

// Swap publishes the back buffer and returns it as the new front.
func (d *DoubleBuffer) Swap() *Framebuffer {
	d.front, d.back = d.back, d.front
	return d.front
}

func (d *DoubleBuffer) Size() (int, int) {
	return d.back.Width, d.back.Height
}
