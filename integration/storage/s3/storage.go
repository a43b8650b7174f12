package s3

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config contains S3 connection and URL settings, read from the environment.
// Endpoint and ForcePathStyle support S3-compatible services like MinIO.
type Config struct {
	Bucket         string        `env:"S3_BUCKET,required"`
	Region         string        `env:"S3_REGION" envDefault:"ap-south-1"`
	AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"S3_SECRET_ACCESS_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`
	BaseURL        string        `env:"S3_BASE_URL"`
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
	PresignTTL     time.Duration `env:"S3_PRESIGN_TTL" envDefault:"15m"`
}

// Client is the subset of S3 object operations the storage uses.
// Narrowed so tests can fake it without AWS credentials.
type Client interface {
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3aws.DeleteObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error)
}

// Presigner generates presigned requests for direct-from-browser uploads.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Storage handles warehouse photo objects in S3. Uploads happen directly
// from the browser against presigned PUT URLs; the server only signs
// requests and derives public URLs.
type Storage struct {
	client         Client
	presigner      Presigner
	bucket         string
	region         string
	endpoint       string
	baseURL        string
	forcePathStyle bool
	presignTTL     time.Duration
}

// Option configures optional Storage dependencies.
type Option func(*options)

type options struct {
	httpClient      *http.Client
	client          Client
	presigner       Presigner
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3aws.Options)
}

// WithClient sets a pre-configured S3 client. Primarily used for testing
// with fakes; pair it with WithPresigner.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithPresigner sets a custom presign client.
func WithPresigner(presigner Presigner) Option {
	return func(o *options) {
		o.presigner = presigner
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
// Useful for custom timeout, proxy, or TLS configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithClientOption adds a custom S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// New creates the storage. Without WithClient it builds a real AWS client
// from cfg, falling back to ambient credentials (IAM role, env vars) when no
// static keys are configured.
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	presigner := options.presigner

	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}
		awsOptions = append(awsOptions, options.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		realClient := s3aws.NewFromConfig(awsConfig, func(o *s3aws.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range options.s3ClientOptions {
				opt(o)
			}
		})
		client = realClient
		if presigner == nil {
			presigner = s3aws.NewPresignClient(realClient)
		}
	}
	if presigner == nil {
		// A fake client cannot be presigned against; the caller must supply one.
		return nil, fmt.Errorf("%w: presigner required with custom client", ErrInvalidConfig)
	}

	presignTTL := cfg.PresignTTL
	if presignTTL <= 0 {
		presignTTL = 15 * time.Minute
	}

	return &Storage{
		client:         client,
		presigner:      presigner,
		bucket:         cfg.Bucket,
		region:         cfg.Region,
		endpoint:       cfg.Endpoint,
		baseURL:        cfg.BaseURL,
		forcePathStyle: cfg.ForcePathStyle,
		presignTTL:     presignTTL,
	}, nil
}

// UploadTicket is everything a browser needs to upload one object and
// reference it afterwards.
type UploadTicket struct {
	UploadURL string        `json:"uploadUrl"`
	Method    string        `json:"method"`
	PublicURL string        `json:"publicUrl"`
	Key       string        `json:"key"`
	ExpiresIn time.Duration `json:"expiresInSeconds"`
}

// PresignUpload signs a PUT for the given key and content type.
// Key validation prevents path traversal in object keys.
func (s *Storage) PresignUpload(ctx context.Context, key, contentType string) (*UploadTicket, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	req, err := s.presigner.PresignPutObject(ctx, &s3aws.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3aws.WithPresignExpires(s.presignTTL))
	if err != nil {
		return nil, classifyS3Error(err, "presign upload")
	}

	return &UploadTicket{
		UploadURL: req.URL,
		Method:    req.Method,
		PublicURL: s.URL(key),
		Key:       key,
		ExpiresIn: s.presignTTL,
	}, nil
}

// Exists checks whether an object is present in the bucket.
func (s *Storage) Exists(ctx context.Context, key string) bool {
	key = strings.TrimPrefix(key, "/")
	if strings.Contains(key, "..") {
		return false
	}

	_, err := s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// Delete removes a single object. Existence is verified first so a missing
// object reports ErrObjectNotFound instead of succeeding silently.
func (s *Storage) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")
	if strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	_, err := s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classifyS3Error(err, "check object")
	}

	_, err = s.client.DeleteObject(ctx, &s3aws.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classifyS3Error(err, "delete object")
	}
	return nil
}

// URL returns the public URL for an object key:
//   - custom BaseURL (e.g. CDN): {base}/{key}
//   - custom endpoint: path-style or virtual-hosted-style per ForcePathStyle
//   - AWS S3: standard AWS URL format
func (s *Storage) URL(key string) string {
	key = strings.TrimPrefix(key, "/")

	if s.baseURL != "" {
		return strings.TrimSuffix(s.baseURL, "/") + "/" + key
	}

	if s.endpoint != "" {
		endpoint := strings.TrimSuffix(s.endpoint, "/")
		protocol := "https://"
		if after, ok := strings.CutPrefix(endpoint, "http://"); ok {
			protocol = "http://"
			endpoint = after
		} else if after, ok := strings.CutPrefix(endpoint, "https://"); ok {
			endpoint = after
		}

		if s.forcePathStyle {
			return fmt.Sprintf("%s%s/%s/%s", protocol, endpoint, s.bucket, key)
		}
		return fmt.Sprintf("%s%s.%s/%s", protocol, s.bucket, endpoint, key)
	}

	if s.forcePathStyle {
		return fmt.Sprintf("https://s3.%s.amazonaws.com/%s/%s", s.region, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
