package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/models"
)

//go:generate mockgen -source=od.go -destination=od_mock.go -package=handlers

// DefaultMaxUploadBytes caps an OD attachment.
const DefaultMaxUploadBytes = 10 << 20

type ODCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.ODInput) (*models.OD, error)
}

type ODLister interface {
	List(ctx context.Context, userID uuid.UUID, filter models.ODFilter) ([]models.OD, error)
}

type ODUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, patch models.ODPatch) (*models.OD, error)
}

type ODDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// AttachmentSaver stores an uploaded file and can take it back if the OD
// that references it is not created.
type AttachmentSaver interface {
	Save(ctx context.Context, userID uuid.UUID, fh *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, ref string) error
}

const odNotFound = "OD not found"

// NewCreateODHandler creates an OD from a JSON body, or from a multipart form
// carrying an optional "attachment" file.
// @Summary Create OD
// @Tags od
// @Accept json,mpfd
// @Produce json
// @Param od body models.ODInput true "OD fields (or the same keys as multipart form fields)"
// @Param attachment formData file false "Supporting document"
// @Success 201 {object} models.OD
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.MessageResponse
// @Router /od [post]
// @Security BearerAuth
func NewCreateODHandler(svc ODCreator, files AttachmentSaver, maxBytes int64) http.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var (
			in  models.ODInput
			err error
		)
		if isMultipart(r) {
			in, err = readODForm(w, r, userID, files, maxBytes)
		} else if json.NewDecoder(r.Body).Decode(&in) != nil {
			err = errInvalidBody
		}
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		od, err := svc.Create(r.Context(), userID, in)
		if err != nil {
			if in.Attachment != "" {
				if derr := files.Delete(r.Context(), in.Attachment); derr != nil {
					logger.Log.Warnw("failed to discard attachment", "ref", in.Attachment, "err", derr)
				}
			}
			writeResourceError(w, err, odNotFound)
			return
		}

		writeJSON(w, http.StatusCreated, od)
	}
}

var (
	errInvalidBody       = errors.New("invalid request body")
	errUploadTooLarge    = errors.New("attachment too large")
	errUploadUnsupported = errors.New("attachments are not supported")
)

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// readODForm parses a multipart OD and stores its attachment, if any.
func readODForm(w http.ResponseWriter, r *http.Request, userID uuid.UUID, files AttachmentSaver, maxBytes int64) (models.ODInput, error) {
	// leave headroom for the text fields
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.ODInput{}, errUploadTooLarge
		}
		return models.ODInput{}, errInvalidBody
	}

	in := models.ODInput{
		Type:            r.FormValue("type"),
		Title:           r.FormValue("title"),
		Reason:          r.FormValue("reason"),
		Date:            r.FormValue("date"),
		Status:          r.FormValue("status"),
		Description:     r.FormValue("description"),
		DayOrder:        r.FormValue("dayOrder"),
		SalaryRange:     r.FormValue("salaryRange"),
		JobType:         r.FormValue("jobType"),
		JobRole:         r.FormValue("jobRole"),
		ApplicationDate: r.FormValue("applicationDate"),
	}

	fhs := r.MultipartForm.File["attachment"]
	if len(fhs) == 0 {
		return in, nil
	}
	if files == nil {
		return in, errUploadUnsupported
	}
	if fhs[0].Size > maxBytes {
		return in, errUploadTooLarge
	}

	ref, err := files.Save(r.Context(), userID, fhs[0])
	if err != nil {
		logger.Log.Errorw("failed to store attachment", "err", err)
		return in, errors.New("failed to store attachment")
	}
	in.Attachment = ref
	return in, nil
}

// NewListODsHandler lists the caller's ODs, newest date first.
// @Summary List ODs
// @Tags od
// @Produce json
// @Param type query string false "Placement or Self-Applied"
// @Param status query string false "Applied, In Process, Approved or Rejected"
// @Param date query string false "Exact date, YYYY-MM-DD"
// @Success 200 {array} models.OD
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.MessageResponse
// @Router /od [get]
// @Security BearerAuth
func NewListODsHandler(svc ODLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		filter := models.ODFilter{
			Type:   q.Get("type"),
			Status: q.Get("status"),
		}
		if d := q.Get("date"); d != "" {
			date, err := models.ParseDate(d)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
				return
			}
			filter.Date = &date
		}

		ods, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			writeResourceError(w, err, odNotFound)
			return
		}

		writeJSON(w, http.StatusOK, ods)
	}
}

// NewUpdateODHandler applies a partial update to one of the caller's ODs.
// @Summary Update OD
// @Tags od
// @Accept json
// @Produce json
// @Param id path string true "OD id"
// @Param patch body models.ODPatch true "Fields to change"
// @Success 200 {object} models.OD
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "OD not found"
// @Router /od/{id} [put]
// @Security BearerAuth
func NewUpdateODHandler(svc ODUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: odNotFound})
			return
		}

		var patch models.ODPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errInvalidBody.Error()})
			return
		}

		od, err := svc.Update(r.Context(), userID, id, patch)
		if err != nil {
			writeResourceError(w, err, odNotFound)
			return
		}

		writeJSON(w, http.StatusOK, od)
	}
}

// NewDeleteODHandler deletes one of the caller's ODs.
// @Summary Delete OD
// @Tags od
// @Produce json
// @Param id path string true "OD id"
// @Success 200 {object} handlers.DeletedResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "OD not found"
// @Router /od/{id} [delete]
// @Security BearerAuth
func NewDeleteODHandler(svc ODDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: odNotFound})
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeResourceError(w, err, odNotFound)
			return
		}

		writeJSON(w, http.StatusOK, DeletedResponse{Message: "OD deleted"})
	}
}

// RegisterODReadHandlers registers the OD read routes.
func RegisterODReadHandlers(r chi.Router, list http.HandlerFunc) {
	r.Get("/od", list)
}

// RegisterODWriteHandlers registers the OD write routes.
func RegisterODWriteHandlers(r chi.Router, create, update, del http.HandlerFunc) {
	r.Post("/od", create)
	r.Put("/od/{id}", update)
	r.Delete("/od/{id}", del)
}
