package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/architeacher/imagekit/internal/adapters/outbound/rest"
	"github.com/architeacher/imagekit/internal/config"
	"github.com/architeacher/imagekit/pkg/circuitbreaker"
	"github.com/architeacher/imagekit/pkg/media"
	"github.com/architeacher/imagekit/pkg/search"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const fileJSON = `{"fileId":"598821f949c0a938d57563bd","name":"ferris.jpg","size":1024,
	"versionInfo":{"id":"598821f949c0a938d57563bd","name":"Version 1"},
	"filePath":"/crabs/ferris.jpg","url":"https://ik.imagekit.io/demo/crabs/ferris.jpg",
	"fileType":"image","height":640,"width":640,"thumbnailUrl":"https://ik.imagekit.io/demo/tr:n-media_library_thumbnail/crabs/ferris.jpg",
	"tags":["rust"],"isPrivateFile":false}`

func newService(t *testing.T, register func(r chi.Router), mutate ...func(*config.ServiceConfig)) *MediaService {
	t.Helper()

	router := chi.NewRouter()
	register(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	cfg := &config.ServiceConfig{
		Credentials: config.Credentials{PublicKey: "public_key", PrivateKey: "private_key"},
		Endpoints: config.Endpoints{
			URL:    "https://ik.imagekit.io/demo",
			Upload: server.URL + "/api/v1/files/upload",
			Files:  server.URL + "/v1/files",
		},
		HTTPClient: config.HTTPClient{Timeout: 5 * time.Second, UserAgent: "imagekit-go"},
	}

	for _, m := range mutate {
		m(cfg)
	}

	return NewMediaService(rest.NewClient(cfg))
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestMediaService_UploadFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		source media.Source
	}{
		{name: "buffer", source: media.FromBytes([]byte("jpeg bytes"))},
		{name: "stream", source: media.FromReader(strings.NewReader("jpeg bytes"))},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(t, func(r chi.Router) {
				r.Post("/api/v1/files/upload", func(w http.ResponseWriter, r *http.Request) {
					if err := r.ParseMultipartForm(1 << 20); err != nil {
						http.Error(w, err.Error(), http.StatusBadRequest)

						return
					}

					file, header, err := r.FormFile("file")
					if err != nil {
						http.Error(w, err.Error(), http.StatusBadRequest)

						return
					}
					defer file.Close()

					data, _ := io.ReadAll(file)

					if string(data) != "jpeg bytes" ||
						header.Filename != "ferris.jpg" ||
						header.Header.Get("Content-Type") != "image/jpeg" ||
						r.FormValue("fileName") != "ferris.jpg" ||
						r.FormValue("folder") != "/crabs" ||
						r.FormValue("tags") != "rust,mascot" {
						http.Error(w, `{"message":"unexpected form"}`, http.StatusBadRequest)

						return
					}

					respond(http.StatusOK, fileJSON)(w, r)
				})
			})

			opts := media.NewUploadOptions(tc.source, "ferris.jpg").
				WithFolder("/crabs").
				WithTags("rust", "mascot")

			file, err := svc.UploadFile(context.Background(), opts)
			require.NoError(t, err)
			require.Equal(t, "598821f949c0a938d57563bd", file.FileID)
			require.Equal(t, media.FileTypeImage, file.FileType)
			require.Equal(t, uint64(640), *file.Height)
			require.Equal(t, []string{"rust"}, file.Tags)
		})
	}
}

func TestMediaService_UploadFile_Invalid(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(chi.Router) {})

	_, err := svc.UploadFile(context.Background(), media.UploadOptions{FileName: "ferris"})
	require.ErrorIs(t, err, media.ErrInvalidUpload)
}

func TestMediaService_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		status          int
		body            string
		expectedKind    error
		expectedMessage string
	}{
		{
			name:            "unauthorized with json message",
			status:          http.StatusUnauthorized,
			body:            `{"message":"Your account cannot be authenticated.","help":"For support kindly contact us at support@imagekit.io ."}`,
			expectedKind:    media.ErrUnauthorized,
			expectedMessage: "Your account cannot be authenticated.",
		},
		{
			name:            "forbidden",
			status:          http.StatusForbidden,
			body:            `{"message":"forbidden"}`,
			expectedKind:    media.ErrForbidden,
			expectedMessage: "forbidden",
		},
		{
			name:            "not found",
			status:          http.StatusNotFound,
			body:            `{"message":"The requested file does not exist."}`,
			expectedKind:    media.ErrNotFound,
			expectedMessage: "The requested file does not exist.",
		},
		{
			name:            "rate limited",
			status:          http.StatusTooManyRequests,
			body:            `{"message":"slow down"}`,
			expectedKind:    media.ErrTooManyRequests,
			expectedMessage: "slow down",
		},
		{
			name:            "gateway timeout with raw body",
			status:          http.StatusGatewayTimeout,
			body:            "upstream timed out",
			expectedKind:    media.ErrInternalServer,
			expectedMessage: "upstream timed out",
		},
		{
			name:         "unexpected status",
			status:       http.StatusConflict,
			body:         "",
			expectedKind: media.ErrUnexpectedStatus,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(t, func(r chi.Router) {
				r.Get("/v1/files/{fileID}/details", respond(tc.status, tc.body))
				r.Delete("/v1/files/{fileID}", respond(tc.status, tc.body))
				r.Get("/v1/files", respond(tc.status, tc.body))
			})

			ctx := context.Background()

			_, detailsErr := svc.GetFileDetails(ctx, "f1")
			deleteErr := svc.DeleteFile(ctx, "f1")
			_, listErr := svc.ListFiles(ctx, media.NewListOptions())

			for _, err := range []error{detailsErr, deleteErr, listErr} {
				require.ErrorIs(t, err, tc.expectedKind)

				var serviceErr *media.ServiceError
				require.True(t, errors.As(err, &serviceErr))
				require.Equal(t, tc.status, serviceErr.StatusCode)
				require.Equal(t, tc.expectedMessage, serviceErr.Message)
			}
		})
	}
}

func TestMediaService_DeleteFile(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(r chi.Router) {
		r.Delete("/v1/files/{fileID}", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "fileID") != "f1" {
				w.WriteHeader(http.StatusNotFound)

				return
			}

			w.WriteHeader(http.StatusNoContent)
		})
	})

	require.NoError(t, svc.DeleteFile(context.Background(), "f1"))
	require.ErrorIs(t, svc.DeleteFile(context.Background(), "f2"), media.ErrNotFound)
}

func TestMediaService_DeleteFile_OKIsNotSuccess(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(r chi.Router) {
		r.Delete("/v1/files/{fileID}", respond(http.StatusOK, `{}`))
	})

	require.ErrorIs(t, svc.DeleteFile(context.Background(), "f1"), media.ErrUnexpectedStatus)
}

func TestMediaService_GetFileDetails(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(r chi.Router) {
		r.Get("/v1/files/{fileID}/details", respond(http.StatusOK, fileJSON))
	})

	file, err := svc.GetFileDetails(context.Background(), "598821f949c0a938d57563bd")
	require.NoError(t, err)
	require.Equal(t, "/crabs/ferris.jpg", file.FilePath)
	require.Equal(t, "Version 1", file.VersionInfo.Name)
}

func TestMediaService_DecodeError(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(r chi.Router) {
		r.Get("/v1/files/{fileID}/details", respond(http.StatusOK, `{"fileId":`))
		r.Get("/v1/files", respond(http.StatusOK, `{"not":"a list"}`))
	})

	_, err := svc.GetFileDetails(context.Background(), "f1")
	require.ErrorIs(t, err, media.ErrDecode)

	_, err = svc.ListFiles(context.Background(), media.NewListOptions())
	require.ErrorIs(t, err, media.ErrDecode)
}

func TestMediaService_ListFiles(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(r chi.Router) {
		r.Get("/v1/files", func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()

			if query.Get("searchQuery") != `createdAt > "7d" and (size > 102400)` || query.Get("limit") != "2" {
				respond(http.StatusOK, `[]`)(w, r)

				return
			}

			respond(http.StatusOK, "["+fileJSON+`,{"fileId":"f2","fileType":"non-image","thumbnail":"https://thumb/2"}]`)(w, r)
		})
	})

	opts := media.NewListOptions().
		WithSearchQuery(search.CreatedAt(search.GreaterThan, `"7d"`).And(search.Size(search.GreaterThan, 102400))).
		WithLimit(2)

	files, err := svc.ListFiles(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "https://thumb/2", files[1].ThumbnailURL)
	require.False(t, files[1].IsImage())

	empty, err := svc.ListFiles(context.Background(), media.NewListOptions())
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestMediaService_ListFiles_NullBody(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(r chi.Router) {
		r.Get("/v1/files", respond(http.StatusOK, `null`))
	})

	files, err := svc.ListFiles(context.Background(), media.NewListOptions())
	require.NoError(t, err)
	require.NotNil(t, files)
}

func TestMediaService_TransportError(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(chi.Router) {}, func(cfg *config.ServiceConfig) {
		cfg.Endpoints.Files = "http://127.0.0.1:1/v1/files"
	})

	_, err := svc.GetFileDetails(context.Background(), "f1")
	require.ErrorIs(t, err, media.ErrTransport)
}

func TestMediaService_CircuitOpen(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(r chi.Router) {
		r.Get("/v1/files/{fileID}/details", respond(http.StatusInternalServerError, `{"message":"boom"}`))
	}, func(cfg *config.ServiceConfig) {
		cfg.CircuitBreaker = config.CircuitBreaker{Enabled: true, Timeout: time.Minute, FailureThreshold: 1}
	})

	_, err := svc.GetFileDetails(context.Background(), "f1")
	require.ErrorIs(t, err, media.ErrInternalServer)

	_, err = svc.GetFileDetails(context.Background(), "f1")
	require.ErrorIs(t, err, media.ErrTransport)
	require.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestMediaService_CanceledContext(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(r chi.Router) {
		r.Get("/v1/files/{fileID}/details", respond(http.StatusOK, fileJSON))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetFileDetails(ctx, "f1")
	require.ErrorIs(t, err, media.ErrTransport)
	require.ErrorIs(t, err, context.Canceled)
}

func TestContentTypeOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "image/png", contentTypeOf("ferris.png"))
	require.Equal(t, defaultContentType, contentTypeOf("ferris"))
}
