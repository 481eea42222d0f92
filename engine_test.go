package imxform

import "context"

// recordingEngine is an Engine that records the calls the descriptor makes.
type recordingEngine struct {
	header    Header
	decodeErr error
	data      []byte
	opErr     error

	decodedPath       string
	fills             []string
	transparencyCalls int
	crops             [][2]int
	resizes           [][2]int
	sharpens          int
}

func (e *recordingEngine) Decode(_ context.Context, path string) (Header, error) {
	e.decodedPath = path
	return e.header, e.decodeErr
}

func (e *recordingEngine) Data() ([]byte, error) {
	return e.data, e.opErr
}

func (e *recordingEngine) Fill(hexColor string) error {
	e.fills = append(e.fills, hexColor)
	return e.opErr
}

func (e *recordingEngine) EnableTransparency() error {
	e.transparencyCalls++
	return e.opErr
}

func (e *recordingEngine) Crop(width, height int) error {
	e.crops = append(e.crops, [2]int{width, height})
	return e.opErr
}

func (e *recordingEngine) Resize(width, height int) error {
	e.resizes = append(e.resizes, [2]int{width, height})
	return e.opErr
}

func (e *recordingEngine) Sharpen() error {
	e.sharpens++
	return e.opErr
}

// basicEngine implements only the required capabilities.
type basicEngine struct{}

func (basicEngine) Decode(context.Context, string) (Header, error) { return Header{}, nil }
func (basicEngine) Data() ([]byte, error) { return nil, nil }
func (basicEngine) Fill(string) error { return nil }
func (basicEngine) EnableTransparency() error { return nil }
