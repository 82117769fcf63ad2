package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/lucasb-eyer/go-colorful"
)

// Remover turns raw image file bytes into a decoded raster whose background
// pixels have been made transparent. It is the seam where a smarter
// segmentation backend could be swapped in; the composition engine only
// ever sees its output.
type Remover interface {
	Remove(data []byte) (*image.NRGBA, error)
}

// ChromaKey removes backgrounds by perceptual color distance: every pixel
// within Tolerance of the Key color (measured in Lab space) becomes fully
// transparent. It suits product shots on a uniform studio background.
type ChromaKey struct {
	// Key is the background color to knock out.
	Key color.Color

	// Tolerance is the maximum Lab-space distance from Key still treated
	// as background. Lab components are normalized to [0,1], so useful
	// values are small; 0.06 roughly matches the classic "channels above
	// 240" white-background test.
	Tolerance float64

	// Feather is the Gaussian radius applied to the resulting alpha mask
	// to soften cut edges. Zero disables feathering. Feathering only ever
	// reduces alpha, so background pixels stay transparent.
	Feather float64
}

// NewChromaKey returns a ChromaKey tuned for white studio backgrounds.
func NewChromaKey() *ChromaKey {
	return &ChromaKey{
		Key:       color.White,
		Tolerance: 0.06,
		Feather:   1.5,
	}
}

// Remove implements Remover.
func (ck *ChromaKey) Remove(data []byte) (*image.NRGBA, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}

	key, _ := colorful.MakeColor(color.NRGBAModel.Convert(ck.Key))
	b := img.Bounds()
	mask := image.NewGray(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			r, g, bl, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
			if a == 0 {
				continue
			}

			c, _ := colorful.MakeColor(color.NRGBA{R: r, G: g, B: bl, A: 255})
			if c.DistanceLab(key) <= ck.Tolerance {
				img.Pix[i+3] = 0
				continue
			}
			mask.SetGray(x, y, color.Gray{Y: a})
		}
	}

	if ck.Feather > 0 {
		soft := blur.Gaussian(mask, ck.Feather)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := img.PixOffset(x, y)
				if s := soft.RGBAAt(x, y).R; s < img.Pix[i+3] {
					img.Pix[i+3] = s
				}
			}
		}
	}

	return img, nil
}

// PassThrough is a Remover for inputs that already carry their own alpha
// mask: it decodes the bytes and leaves every pixel untouched.
type PassThrough struct{}

// Remove implements Remover.
func (PassThrough) Remove(data []byte) (*image.NRGBA, error) {
	return Decode(data)
}
