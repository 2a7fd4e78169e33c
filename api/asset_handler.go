package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/chameleon-site/errs"
	"github.com/rpupo63/chameleon-site/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const assetCacheControl = "public, max-age=86400"

// assetContentTypes pins the image types served under /api/assets
var assetContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

type assetHandler struct {
	responder Responder
	logger    zerolog.Logger
	assets    services.AssetStore
}

func newAssetHandler(assets services.AssetStore, production bool) assetHandler {
	logger := log.With().Str("handlerName", "assetHandler").Logger()

	return assetHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		assets:    assets,
	}
}

func assetContentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if contentType, ok := assetContentTypes[ext]; ok {
		return contentType
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

// getAsset streams a static asset with a one day cache lifetime
// @Summary Get static asset
// @Tags Assets
// @Param path path string true "Asset path"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Bad Request - invalid asset path"
// @Failure 404 {object} ErrorResponse "Not Found - asset does not exist"
// @Router /api/assets/{path} [get]
func (h assetHandler) getAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")

		asset, err := h.assets.Open(r.Context(), name)
		switch {
		case errors.Is(err, services.ErrInvalidAssetPath):
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid asset path"))
			return
		case errors.Is(err, services.ErrAssetNotFound):
			h.responder.WriteError(w, errs.NewNotFoundError("Asset not found").WithDetails(map[string]string{"path": name}))
			return
		case err != nil:
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Failed to open asset", err))
			return
		}
		defer asset.Body.Close()

		header := w.Header()
		header.Set("Content-Type", assetContentType(name))
		header.Set("Cache-Control", assetCacheControl)
		if asset.Size > 0 {
			header.Set("Content-Length", strconv.FormatInt(asset.Size, 10))
		}
		if !asset.ModTime.IsZero() {
			header.Set("Last-Modified", asset.ModTime.UTC().Format(http.TimeFormat))
		}

		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.Copy(w, asset.Body); err != nil {
			h.logger.Warn().Err(err).Str("path", name).Msg("error streaming asset")
		}
	}
}
