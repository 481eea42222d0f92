package formats

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ExtractGIF reads the logical screen descriptor and scans extension blocks
// up to the first image for a transparent colour index.
func ExtractGIF(r io.ReadSeeker) (*Result, error) {
	if err := rewind(r); err != nil {
		return nil, err
	}

	var sig [6]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read GIF signature")
	}
	if Detect(sig[:]) != GIF {
		return nil, errors.Wrap(ErrInvalidData, "invalid GIF signature")
	}

	var lsd [7]byte
	if _, err := io.ReadFull(r, lsd[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read GIF logical screen descriptor")
	}

	packed := lsd[4]
	result := &Result{
		MIME:       MIME(GIF),
		Width:      int(binary.LittleEndian.Uint16(lsd[0:2])),
		Height:     int(binary.LittleEndian.Uint16(lsd[2:4])),
		ColorSpace: "Indexed",
		ColorDepth: int((packed>>4)&0x07) + 1,
	}

	if packed&0x80 != 0 {
		tableSize := 3 * (1 << (int(packed&0x07) + 1))
		if _, err := r.Seek(int64(tableSize), io.SeekCurrent); err != nil {
			return result, nil
		}
	}

	for {
		var block [1]byte
		if _, err := io.ReadFull(r, block[:]); err != nil {
			return result, nil
		}

		switch block[0] {
		case 0x21:
			var label [1]byte
			if _, err := io.ReadFull(r, label[:]); err != nil {
				return result, nil
			}
			if label[0] == 0xF9 {
				transparent, err := readGraphicControl(r)
				if err != nil {
					return result, nil
				}
				result.HasAlpha = result.HasAlpha || transparent
				continue
			}
			if err := skipSubBlocks(r); err != nil {
				return result, nil
			}

		default:
			// Image descriptor, trailer or garbage: the header fields are known.
			return result, nil
		}
	}
}

// readGraphicControl consumes a graphic control extension and reports its
// transparency flag.
func readGraphicControl(r io.Reader) (bool, error) {
	var size [1]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return false, err
	}
	if size[0] != 4 {
		if _, err := io.CopyN(io.Discard, r, int64(size[0])); err != nil {
			return false, err
		}
		return false, skipSubBlocks(r)
	}

	var gce [4]byte
	if _, err := io.ReadFull(r, gce[:]); err != nil {
		return false, err
	}
	return gce[0]&0x01 != 0, skipSubBlocks(r)
}

func skipSubBlocks(r io.Reader) error {
	var sizeBuf [1]byte
	for {
		if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
			return err
		}
		size := sizeBuf[0]
		if size == 0 {
			return nil
		}
		if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
			return err
		}
	}
}
