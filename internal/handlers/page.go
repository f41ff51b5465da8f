package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/depositodopitty/pit/auth"
	"github.com/depositodopitty/pit/httpx"
	"github.com/depositodopitty/pit/i18n"
	"github.com/depositodopitty/pit/internal/apiclient"
	"github.com/depositodopitty/pit/internal/listing"
	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/middleware"
	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/store"
	"github.com/depositodopitty/pit/validation"
	"github.com/depositodopitty/pit/view"
)

// Page serves one CRUD screen: a searchable, paginated table and a modal
// form, all on the same URL. Every request reloads the full list.
type Page[T any, P models.Ptr[T]] struct {
	Base     string // "/clientes"
	Template string
	Title    string
	NewLabel string
	Repo     store.Repository[T]

	// Search returns the fields matched by the ?q= filter.
	Search func(T) []string
	// Decode reads the posted form. editing is false on create.
	Decode func(r *http.Request, editing bool) (T, validation.Violations)
	// Blank is the initial value of the "new" form.
	Blank func() T
	// Prepare adjusts the fetched list before it is filtered and shown.
	Prepare func(items []T, now time.Time) []T
	// BeforeSave runs after validation, right before the repository call.
	BeforeSave func(v *T, now time.Time)
	// BeforeUpdate receives the stored record and the edited one.
	BeforeUpdate func(ctx context.Context, old, updated T) error
	// Extra adds page specific template data.
	Extra func(data map[string]any, form T)
	// ConflictField is the form field blamed for a store.ErrConflict. Empty
	// reports the conflict as a form level save failure.
	ConflictField string

	Now func() time.Time
}

// formState is what the modal shows when the list is rendered.
type formState[T any] struct {
	open      bool
	editing   bool
	value     T
	errors    validation.Violations
	formError string
}

func (h *Page[T, P]) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Page[T, P]) blank() T {
	if h.Blank != nil {
		return h.Blank()
	}
	var zero T
	return zero
}

// Register mounts the page routes on mux, wrapped by wrap.
func (h *Page[T, P]) Register(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	mux.Handle("GET "+h.Base, wrap(http.HandlerFunc(h.List)))
	mux.Handle("POST "+h.Base, wrap(http.HandlerFunc(h.Save)))
	mux.Handle("POST "+h.Base+"/{id}", wrap(http.HandlerFunc(h.Save)))
	mux.Handle("PUT "+h.Base+"/{id}", wrap(http.HandlerFunc(h.Save)))
	mux.Handle("POST "+h.Base+"/{id}/delete", wrap(http.HandlerFunc(h.Delete)))
	mux.Handle("DELETE "+h.Base+"/{id}", wrap(http.HandlerFunc(h.Delete)))
}

// List renders the table. ?new=1 opens an empty form and ?edit=ID the form
// of an existing record.
func (h *Page[T, P]) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st := formState[T]{}
	switch {
	case q.Get("new") != "":
		st.open = true
		st.value = h.blank()
	case q.Get("edit") != "":
		st.open = true
		st.editing = true
	}
	h.render(w, r, http.StatusOK, st)
}

// load fetches and prepares the full list.
func (h *Page[T, P]) load(ctx context.Context) ([]T, error) {
	items, err := h.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if h.Prepare != nil {
		items = h.Prepare(items, h.now())
	}
	return items, nil
}

func (h *Page[T, P]) render(w http.ResponseWriter, r *http.Request, status int, st formState[T]) {
	all, loadErr := h.load(r.Context())
	if errors.Is(loadErr, store.ErrUnauthorized) {
		sessionExpired(w, r)
		return
	}
	if loadErr != nil {
		logger.FromContext(r.Context()).Error().Err(loadErr).Str("page", h.Base).Msg("list failed")
	}
	q := r.URL.Query()
	term := q.Get("q")
	page := listing.Paginate(listing.Filter(all, term, h.Search), listing.ParsePage(q.Get("page")), listing.ParseSize(q.Get("size")))

	if httpx.WantsJSON(r) {
		if loadErr != nil {
			httpx.JSONError(w, http.StatusBadGateway, "load_failed", nil)
			return
		}
		httpx.JSON(w, status, map[string]any{
			"items":       page.Items,
			"page":        page.Number,
			"size":        page.Size,
			"total_items": page.TotalItems,
			"total_pages": page.TotalPages,
		})
		return
	}

	flash := middleware.PopFlash(w, r)
	if loadErr != nil && flash == nil {
		flash = &middleware.FlashMessage{Kind: "error", Message: translate(r, "load_failed")}
	}

	if st.open && st.editing && st.errors == nil && st.formError == "" {
		id, _ := strconv.ParseUint(q.Get("edit"), 10, 64)
		found := false
		for _, it := range all {
			if models.Key[T, P](it) == uint(id) && id != 0 {
				st.value, found = it, true
				break
			}
		}
		if !found {
			st.open = false
			if loadErr == nil {
				flash = &middleware.FlashMessage{Kind: "error", Message: translate(r, "not_found")}
			}
		}
	}

	data := map[string]any{
		"Title":     h.Title,
		"Base":      h.Base,
		"NewLabel":  h.NewLabel,
		"Page":      page,
		"Query":     term,
		"Sizes":     listing.PageSizes,
		"Return":    returnQuery(term, page.Size, page.Number),
		"Form":      st.value,
		"FormOpen":  st.open,
		"Editing":   st.editing,
		"Errors":    st.errors,
		"FormError": st.formError,
	}
	if flash != nil {
		data["Flash"] = flash
	}
	if h.Extra != nil {
		h.Extra(data, st.value)
	}
	if err := view.RenderStatus(w, r, status, h.Template, data); err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Str("template", h.Template).Msg("render failed")
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Save creates (POST /base) or updates (POST|PUT /base/{id}) a record.
func (h *Page[T, P]) Save(w http.ResponseWriter, r *http.Request) {
	var id uint
	editing := r.PathValue("id") != ""
	if editing {
		n, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
		if err != nil || n == 0 {
			http.NotFound(w, r)
			return
		}
		id = uint(n)
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	// Re-rendered forms keep the list position the user came from.
	r.URL.RawQuery = r.PostForm.Get("return")

	v, errs := h.Decode(r, editing)
	if editing {
		v = models.WithKey[T, P](v, id)
	}
	st := formState[T]{open: true, editing: editing, value: v, errors: errs}
	if !errs.Empty() {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", errs)
			return
		}
		h.render(w, r, http.StatusBadRequest, st)
		return
	}
	if h.BeforeSave != nil {
		h.BeforeSave(&v, h.now())
	}

	ctx := r.Context()
	var (
		saved T
		err   error
	)
	if editing {
		if h.BeforeUpdate != nil {
			err = h.beforeUpdate(ctx, v, id)
		}
		if err == nil {
			saved, err = h.Repo.Update(ctx, v)
		}
	} else {
		saved, err = h.Repo.Create(ctx, v)
	}
	if err != nil {
		h.saveFailed(w, r, st, err)
		return
	}

	if httpx.WantsJSON(r) {
		status := http.StatusOK
		if !editing {
			status = http.StatusCreated
		}
		httpx.JSON(w, status, saved)
		return
	}
	if editing {
		middleware.Flash(w, r, "updated")
	} else {
		middleware.Flash(w, r, "created")
	}
	httpx.SeeOther(w, r, h.listURL(r))
}

func (h *Page[T, P]) beforeUpdate(ctx context.Context, v T, id uint) error {
	items, err := h.Repo.List(ctx)
	if err != nil {
		return err
	}
	for _, old := range items {
		if models.Key[T, P](old) == id {
			return h.BeforeUpdate(ctx, old, v)
		}
	}
	return store.ErrNotFound
}

func (h *Page[T, P]) saveFailed(w http.ResponseWriter, r *http.Request, st formState[T], err error) {
	switch {
	case errors.Is(err, store.ErrUnauthorized):
		sessionExpired(w, r)
		return
	case errors.Is(err, store.ErrNotFound):
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		middleware.FlashError(w, r, "not_found")
		httpx.SeeOther(w, r, h.listURL(r))
		return
	case errors.Is(err, store.ErrConflict) && h.ConflictField != "":
		msg := apiclient.MessageOf(err)
		if msg == "" {
			msg = h.ConflictField + "_taken"
		}
		st.errors = validation.Violations{h.ConflictField: msg}
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusConflict, "conflict", st.errors)
			return
		}
		h.render(w, r, http.StatusConflict, st)
		return
	case errors.Is(err, store.ErrConflict):
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusConflict, "conflict", nil)
			return
		}
		st.errors = validation.Violations{}
		st.formError = "save_failed"
		h.render(w, r, http.StatusConflict, st)
		return
	}
	logger.FromContext(r.Context()).Error().Err(err).Str("page", h.Base).Msg("save failed")
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, http.StatusBadGateway, "save_failed", nil)
		return
	}
	st.errors = validation.Violations{}
	st.formError = "save_failed"
	h.render(w, r, http.StatusBadGateway, st)
}

// Delete removes a record (POST /base/{id}/delete or DELETE /base/{id}).
func (h *Page[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || n == 0 {
		http.NotFound(w, r)
		return
	}
	if r.Method == http.MethodPost {
		_ = r.ParseForm()
	}
	err = h.Repo.Delete(r.Context(), uint(n))
	if httpx.WantsJSON(r) {
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, store.ErrUnauthorized):
			sessionExpired(w, r)
		case errors.Is(err, store.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		default:
			httpx.JSONError(w, http.StatusBadGateway, "delete_failed", nil)
		}
		return
	}
	switch {
	case err == nil:
		middleware.Flash(w, r, "deleted")
	case errors.Is(err, store.ErrUnauthorized):
		sessionExpired(w, r)
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.FlashError(w, r, "not_found")
	default:
		logger.FromContext(r.Context()).Error().Err(err).Str("page", h.Base).Uint64("id", n).Msg("delete failed")
		middleware.FlashError(w, r, "delete_failed")
	}
	httpx.SeeOther(w, r, h.listURL(r))
}

// listURL is the list location to go back to after a form post.
func (h *Page[T, P]) listURL(r *http.Request) string {
	ret, _ := url.ParseQuery(r.FormValue("return"))
	if s := cleanReturn(ret); s != "" {
		return h.Base + "?" + s
	}
	return h.Base
}

// returnQuery encodes the list position carried by forms.
func returnQuery(term string, size, page int) string {
	v := url.Values{}
	if term != "" {
		v.Set("q", term)
	}
	v.Set("size", strconv.Itoa(size))
	v.Set("page", strconv.Itoa(page))
	return v.Encode()
}

// cleanReturn keeps only the list position keys.
func cleanReturn(v url.Values) string {
	out := url.Values{}
	for _, k := range []string{"q", "size", "page"} {
		if s := v.Get(k); s != "" {
			out.Set(k, s)
		}
	}
	return out.Encode()
}

func translate(r *http.Request, code string) string {
	return i18n.T(middleware.LangFrom(r), code)
}

// sessionExpired handles a 401 from the backend: the session is dropped and
// the browser sent back to the login page.
func sessionExpired(w http.ResponseWriter, r *http.Request) {
	if !httpx.WantsJSON(r) {
		middleware.FlashError(w, r, "session_expired")
	}
	auth.Unauthorized(w, r)
}
