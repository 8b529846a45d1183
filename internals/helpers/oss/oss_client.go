package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"summerschool_backend/internals/configs"
	"summerschool_backend/internals/constants"
)

// MaxUploadSize caps a single class image.
const MaxUploadSize = int64(5 * 1024 * 1024)

var ErrUnsupportedFormat = errors.New("unsupported image format")

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

var DefaultWebPOptions = WebPOptions{MaxW: 1600, MaxH: 1600, Quality: 80}

/* =======================================================================
   Decode (jpeg/png/webp), sniffed by content then extension
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch constants.DetectImageFormatFromExt(filename) {
	case constants.ImageJPEG:
		return jpeg.Decode(bytes.NewReader(all))
	case constants.ImagePNG:
		return png.Decode(bytes.NewReader(all))
	case constants.ImageWEBP:
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ct)
}

// ConvertToWebP reads, decodes, shrinks to fit MaxW x MaxH and encodes as lossy WebP.
func ConvertToWebP(r io.Reader, filename string, opt WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if opt.MaxW > 0 && opt.MaxH > 0 && (b.Dx() > opt.MaxW || b.Dy() > opt.MaxH) {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.CatmullRom)
	}

	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   OSS-backed store
======================================================================= */

type OSSService struct {
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
	Prefix     string
	Options    WebPOptions
}

func NewOSSService(cfg configs.OSS) (*OSSService, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	log.Printf("[INFO] OSS bucket %s ready", cfg.Bucket)

	return &OSSService{
		Bucket:     bkt,
		Endpoint:   cfg.Endpoint,
		BucketName: cfg.Bucket,
		PublicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
		Prefix:     strings.Trim(cfg.Prefix, "/"),
		Options:    DefaultWebPOptions,
	}, nil
}

// UploadImage re-encodes the form file to WebP and stores it under the prefix.
func (s *OSSService) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("%w: file too large (max %d bytes)", ErrUnsupportedFormat, MaxUploadSize)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	data, err := ConvertToWebP(src, fh.Filename, s.Options)
	if err != nil {
		return "", err
	}

	key := s.objectKey(fh.Filename)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) PublicURL(key string) string {
	if s.PublicBase != "" {
		return s.PublicBase + "/" + key
	}
	ep := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, ep, key)
}

// objectKey: <prefix>/<yyyy/mm>/<uuid>-<base>.webp
func (s *OSSService) objectKey(filename string) string {
	return buildObjectKey(s.Prefix, filename, time.Now())
}

func buildObjectKey(prefix, filename string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, base)
	if base == "" {
		base = "image"
	}
	name := fmt.Sprintf("%s/%s-%s.webp", now.UTC().Format("2006/01"), uuid.NewString(), base)
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
