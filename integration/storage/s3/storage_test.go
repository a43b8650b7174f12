package s3_test

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WareOnGo/wag-dashboard/integration/storage/s3"
)

type fakeClient struct {
	objects map[string]bool
	headErr error
}

func (f *fakeClient) HeadObject(_ context.Context, params *s3aws.HeadObjectInput, _ ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	if !f.objects[aws.ToString(params.Key)] {
		return nil, &types.NoSuchKey{}
	}
	return &s3aws.HeadObjectOutput{}, nil
}

func (f *fakeClient) DeleteObject(_ context.Context, params *s3aws.DeleteObjectInput, _ ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(params.Key))
	return &s3aws.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	lastInput *s3aws.PutObjectInput
	err       error
}

func (f *fakePresigner) PresignPutObject(_ context.Context, params *s3aws.PutObjectInput, _ ...func(*s3aws.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastInput = params
	return &v4.PresignedHTTPRequest{
		URL:    "https://signed.example.com/" + aws.ToString(params.Key),
		Method: "PUT",
	}, nil
}

func newTestStorage(t *testing.T, cfg s3.Config, client s3.Client, presigner s3.Presigner) *s3.Storage {
	t.Helper()
	store, err := s3.New(context.Background(), cfg, s3.WithClient(client), s3.WithPresigner(presigner))
	require.NoError(t, err)
	return store
}

func baseConfig() s3.Config {
	return s3.Config{
		Bucket:     "wareongo-photos",
		Region:     "ap-south-1",
		PresignTTL: 15 * time.Minute,
	}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		_, err := s3.New(context.Background(), s3.Config{Region: "ap-south-1"})
		assert.ErrorIs(t, err, s3.ErrInvalidConfig)
	})

	t.Run("custom client without presigner", func(t *testing.T) {
		t.Parallel()
		_, err := s3.New(context.Background(), baseConfig(), s3.WithClient(&fakeClient{}))
		assert.ErrorIs(t, err, s3.ErrInvalidConfig)
	})
}

func TestPresignUpload(t *testing.T) {
	t.Parallel()

	t.Run("signs a PUT for the key", func(t *testing.T) {
		t.Parallel()
		presigner := &fakePresigner{}
		store := newTestStorage(t, baseConfig(), &fakeClient{}, presigner)

		ticket, err := store.PresignUpload(context.Background(), "warehouses/abc/front.jpg", "image/jpeg")
		require.NoError(t, err)

		assert.Equal(t, "PUT", ticket.Method)
		assert.Equal(t, "https://signed.example.com/warehouses/abc/front.jpg", ticket.UploadURL)
		assert.Equal(t, "warehouses/abc/front.jpg", ticket.Key)
		assert.Equal(t, 15*time.Minute, ticket.ExpiresIn)
		assert.Equal(t, "https://wareongo-photos.s3.ap-south-1.amazonaws.com/warehouses/abc/front.jpg", ticket.PublicURL)

		require.NotNil(t, presigner.lastInput)
		assert.Equal(t, "image/jpeg", aws.ToString(presigner.lastInput.ContentType))
		assert.Equal(t, "wareongo-photos", aws.ToString(presigner.lastInput.Bucket))
	})

	t.Run("rejects traversal keys", func(t *testing.T) {
		t.Parallel()
		store := newTestStorage(t, baseConfig(), &fakeClient{}, &fakePresigner{})

		_, err := store.PresignUpload(context.Background(), "../secrets/key.pem", "image/jpeg")
		assert.ErrorIs(t, err, s3.ErrInvalidKey)

		_, err = store.PresignUpload(context.Background(), "", "image/jpeg")
		assert.ErrorIs(t, err, s3.ErrInvalidKey)
	})
}

func TestExistsAndDelete(t *testing.T) {
	t.Parallel()

	t.Run("exists", func(t *testing.T) {
		t.Parallel()
		client := &fakeClient{objects: map[string]bool{"warehouses/a/1.jpg": true}}
		store := newTestStorage(t, baseConfig(), client, &fakePresigner{})

		assert.True(t, store.Exists(context.Background(), "warehouses/a/1.jpg"))
		assert.False(t, store.Exists(context.Background(), "warehouses/a/2.jpg"))
		assert.False(t, store.Exists(context.Background(), "../etc/passwd"))
	})

	t.Run("delete removes the object", func(t *testing.T) {
		t.Parallel()
		client := &fakeClient{objects: map[string]bool{"warehouses/a/1.jpg": true}}
		store := newTestStorage(t, baseConfig(), client, &fakePresigner{})

		require.NoError(t, store.Delete(context.Background(), "warehouses/a/1.jpg"))
		assert.False(t, store.Exists(context.Background(), "warehouses/a/1.jpg"))
	})

	t.Run("delete of missing object reports not found", func(t *testing.T) {
		t.Parallel()
		store := newTestStorage(t, baseConfig(), &fakeClient{}, &fakePresigner{})
		err := store.Delete(context.Background(), "warehouses/a/ghost.jpg")
		assert.ErrorIs(t, err, s3.ErrObjectNotFound)
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		cfg  s3.Config
		key  string
		want string
	}{
		{
			name: "aws virtual hosted style",
			cfg:  baseConfig(),
			key:  "warehouses/a/1.jpg",
			want: "https://wareongo-photos.s3.ap-south-1.amazonaws.com/warehouses/a/1.jpg",
		},
		{
			name: "aws path style",
			cfg: func() s3.Config {
				c := baseConfig()
				c.ForcePathStyle = true
				return c
			}(),
			key:  "a.jpg",
			want: "https://s3.ap-south-1.amazonaws.com/wareongo-photos/a.jpg",
		},
		{
			name: "custom endpoint path style",
			cfg: func() s3.Config {
				c := baseConfig()
				c.Endpoint = "http://localhost:9000"
				c.ForcePathStyle = true
				return c
			}(),
			key:  "a.jpg",
			want: "http://localhost:9000/wareongo-photos/a.jpg",
		},
		{
			name: "cdn base url",
			cfg: func() s3.Config {
				c := baseConfig()
				c.BaseURL = "https://cdn.wareongo.com/"
				return c
			}(),
			key:  "/a.jpg",
			want: "https://cdn.wareongo.com/a.jpg",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := newTestStorage(t, tc.cfg, &fakeClient{}, &fakePresigner{})
			assert.Equal(t, tc.want, store.URL(tc.key))
		})
	}
}
