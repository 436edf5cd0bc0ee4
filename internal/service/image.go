package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pageza/foodcourt/backend/config"
	"github.com/rs/zerolog/log"
)

// DefaultImageQuality is the JPEG quality used when none is configured.
const DefaultImageQuality = 90

const imagePrefix = "food_images/"

// ErrUnsupportedImage is returned when an upload cannot be decoded.
var ErrUnsupportedImage = errors.New("upload a valid image: the file is either not an image or a corrupted image")

// ImageStore persists an encoded image under key and returns its public reference.
type ImageStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// S3Store keeps images in an S3 bucket
type S3Store struct {
	s3Config *config.S3Config
}

func NewS3Store(s3Config *config.S3Config) *S3Store {
	return &S3Store{s3Config: s3Config}
}

// Save uploads image data to S3 and returns the public URL
func (s *S3Store) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Ctx(ctx).Info().Str("url", publicURL).Msg("uploaded image to S3")
	return publicURL, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.s3Config.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

// LocalStore keeps images on disk below dir; baseURL is where dir is served.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *LocalStore) Save(ctx context.Context, key string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create media directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// ImageService re-encodes uploaded dish pictures and stores them
type ImageService struct {
	store   ImageStore
	quality int
}

// NewImageService creates a new ImageService instance
func NewImageService(store ImageStore, quality int) *ImageService {
	if quality < 1 || quality > 100 {
		quality = DefaultImageQuality
	}
	return &ImageService{store: store, quality: quality}
}

// Upload decodes a JPEG, PNG or GIF upload, re-encodes it as JPEG and stores
// it under food_images/. It returns the stored reference.
func (s *ImageService) Upload(ctx context.Context, r io.Reader) (string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	key := fmt.Sprintf("%s%s.jpg", imagePrefix, uuid.New().String())
	ref, err := s.store.Save(ctx, key, buf.Bytes(), "image/jpeg")
	if err != nil {
		return "", err
	}
	log.Ctx(ctx).Debug().Str("source_format", format).Str("key", key).Msg("image stored")
	return ref, nil
}

// Discard deletes a picture previously returned by Upload.
func (s *ImageService) Discard(ctx context.Context, ref string) error {
	i := strings.LastIndex(ref, imagePrefix)
	if i < 0 {
		return fmt.Errorf("not an uploaded image: %q", ref)
	}
	key := ref[i:]
	if err := s.store.Delete(ctx, key); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("key", key).Msg("image discarded")
	return nil
}
