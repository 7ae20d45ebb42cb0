package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"syncfloww/internal/delivery/api/middleware"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errMalformedBody = domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Malformed request", "")

// bindAndValidate binds the body (and query for GET) into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errMalformedBody.WithDetails(bindMessage(err))
	}

	return c.Validate(req)
}

func bindMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return "Malformed request"
}

// currentUserID fails with 401 when no authenticated user is on the context.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathID parses a uuid path parameter; malformed ids cannot match a row and yield notFound.
func pathID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}

// pageRequest reads page and page_size.
func pageRequest(c echo.Context) (entity.PageRequest, error) {
	var page, pageSize int
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("page_size", &pageSize).
		BindError(); err != nil {
		return entity.PageRequest{}, domainerrors.NewFieldError("page", "A valid integer is required.")
	}

	return entity.NewPageRequest(page, pageSize), nil
}

// optionalUUIDQuery parses a uuid query parameter when present.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewFieldError(name, "Must be a valid UUID.")
	}

	return &id, nil
}

// optionalBoolQuery parses a boolean query parameter when present.
func optionalBoolQuery(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.NewFieldError(name, "Must be a valid boolean.")
	}

	return &v, nil
}

// requireOnPut flags fields that a full update must carry.
func requireOnPut(c echo.Context, fields map[string]bool) error {
	if c.Request().Method != http.MethodPut {
		return nil
	}
	verr := domainerrors.NewValidationError(nil)
	for field, present := range fields {
		if !present {
			verr.Add(field, "This field is required.")
		}
	}
	if verr.HasErrors() {
		return verr
	}

	return nil
}

// NullableUUID tells an explicit JSON null apart from an absent field.
type NullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (n *NullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil

		return nil
	}

	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id

	return nil
}
