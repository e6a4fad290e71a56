package imageproc

import (
	"Inkwell/internal/pkg/consts"
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
)

var ErrNotImage = errors.New("file is not an image")

// Result 处理后的 JPEG 图片
type Result struct {
	Data        []byte
	Width       int
	Height      int
	ContentType string
}

// Fit 解码图片，缩放到 1600x1600 以内并重新编码为 JPEG
func Fit(r io.Reader) (*Result, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(512)
	if !strings.HasPrefix(http.DetectContentType(head), consts.MimePrefixImage) {
		return nil, ErrNotImage
	}

	img, err := imaging.Decode(br, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > consts.ImageMaxWidth || bounds.Dy() > consts.ImageMaxHeight {
		img = imaging.Fit(img, consts.ImageMaxWidth, consts.ImageMaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(consts.ImageJPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &Result{
		Data:        buf.Bytes(),
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ContentType: "image/jpeg",
	}, nil
}
