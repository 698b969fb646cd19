package ideas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/vidjot/vidjot/internal/apperror"
	"github.com/vidjot/vidjot/internal/flash"
)

// mockIdeaService implements IdeaService for handler tests.
type mockIdeaService struct {
	listFn   func(ctx context.Context) ([]Idea, error)
	getFn    func(ctx context.Context, id int64) (*Idea, error)
	createFn func(ctx context.Context, input CreateIdeaInput) (*Idea, error)
	updateFn func(ctx context.Context, id int64, input UpdateIdeaInput) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockIdeaService) List(ctx context.Context) ([]Idea, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockIdeaService) Get(ctx context.Context, id int64) (*Idea, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, apperror.NewNotFound("idea not found")
}

func (m *mockIdeaService) Create(ctx context.Context, input CreateIdeaInput) (*Idea, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return &Idea{ID: 1, Title: input.Title, Details: input.Details}, nil
}

func (m *mockIdeaService) Update(ctx context.Context, id int64, input UpdateIdeaInput) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, input)
	}
	return nil
}

func (m *mockIdeaService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// newTestFlashStore creates a flash store backed by an in-process Redis.
func newTestFlashStore(t *testing.T) *flash.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return flash.NewStore(rdb)
}

// consumeFlash replays the response's cookies into a fresh request and
// drains the flash store, returning the pending error and success messages.
func consumeFlash(t *testing.T, store *flash.Store, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	errMsg, successMsg, err := store.Consume(c)
	if err != nil {
		t.Fatalf("consuming flash: %v", err)
	}
	return errMsg, successMsg
}

// formRequest builds an echo context carrying a URL-encoded form POST.
func formRequest(t *testing.T, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerList_RendersIdeas(t *testing.T) {
	store := newTestFlashStore(t)
	svc := &mockIdeaService{
		listFn: func(ctx context.Context) ([]Idea, error) {
			return []Idea{
				{ID: 2, Title: "Build a treehouse", Details: "Oak in the backyard", CreatedAt: time.Now()},
				{ID: 1, Title: "Learn fishing", Details: "Find a quiet lake", CreatedAt: time.Now()},
			}, nil
		},
	}
	h := NewHandler(svc, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ideas", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Build a treehouse") || !strings.Contains(body, "Learn fishing") {
		t.Error("expected both idea titles in the rendered page")
	}
	if !strings.Contains(body, "/ideas/edit/2") || !strings.Contains(body, "/ideas/delete/2") {
		t.Error("expected edit and delete links in the rendered page")
	}
}

func TestHandlerList_Empty(t *testing.T) {
	store := newTestFlashStore(t)
	h := NewHandler(&mockIdeaService{}, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ideas", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "No ideas yet") {
		t.Error("expected empty-state message in the rendered page")
	}
}

func TestHandlerAdd_Success(t *testing.T) {
	store := newTestFlashStore(t)
	var captured CreateIdeaInput
	svc := &mockIdeaService{
		createFn: func(ctx context.Context, input CreateIdeaInput) (*Idea, error) {
			captured = input
			return &Idea{ID: 1, Title: input.Title, Details: input.Details}, nil
		},
	}
	h := NewHandler(svc, store)

	c, rec := formRequest(t, "/ideas/add", url.Values{
		"title":   {"Learn fishing"},
		"details": {"Find a quiet lake"},
	})
	if err := h.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.Title != "Learn fishing" || captured.Details != "Find a quiet lake" {
		t.Errorf("unexpected input passed to service: %+v", captured)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/ideas" {
		t.Errorf("expected redirect to /ideas, got %s", loc)
	}

	_, successMsg := consumeFlash(t, store, rec)
	if successMsg != "Your idea has been saved" {
		t.Errorf("unexpected flash message: %q", successMsg)
	}
}

func TestHandlerAdd_ValidationFailure(t *testing.T) {
	store := newTestFlashStore(t)
	svc := &mockIdeaService{
		createFn: func(ctx context.Context, input CreateIdeaInput) (*Idea, error) {
			return nil, apperror.NewValidation("Please fill out all the required fields")
		},
	}
	h := NewHandler(svc, store)

	c, rec := formRequest(t, "/ideas/add", url.Values{
		"title":   {""},
		"details": {"Find a quiet lake"},
	})
	if err := h.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/ideas/add" {
		t.Errorf("expected redirect back to /ideas/add, got %s", loc)
	}

	errMsg, _ := consumeFlash(t, store, rec)
	if errMsg != "Please fill out all the required fields" {
		t.Errorf("unexpected flash message: %q", errMsg)
	}
}

func TestHandlerEditForm_RendersIdea(t *testing.T) {
	store := newTestFlashStore(t)
	svc := &mockIdeaService{
		getFn: func(ctx context.Context, id int64) (*Idea, error) {
			return &Idea{ID: id, Title: "Learn fishing", Details: "Find a quiet lake"}, nil
		},
	}
	h := NewHandler(svc, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ideas/edit/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.EditForm(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Learn fishing") || !strings.Contains(body, "Find a quiet lake") {
		t.Error("expected form to be pre-filled with the idea's text")
	}
	if !strings.Contains(body, "/ideas/edit/42") {
		t.Error("expected form to post back to the idea's edit path")
	}
}

func TestHandlerEditForm_NotFound(t *testing.T) {
	store := newTestFlashStore(t)
	h := NewHandler(&mockIdeaService{}, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ideas/edit/9999", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("9999")

	err := h.EditForm(c)
	assertAppError(t, err, 404)
}

func TestHandlerEdit_Success(t *testing.T) {
	store := newTestFlashStore(t)
	var gotID int64
	var gotInput UpdateIdeaInput
	svc := &mockIdeaService{
		updateFn: func(ctx context.Context, id int64, input UpdateIdeaInput) error {
			gotID, gotInput = id, input
			return nil
		},
	}
	h := NewHandler(svc, store)

	c, rec := formRequest(t, "/ideas/edit/42", url.Values{
		"title":   {"New title"},
		"details": {"New details"},
	})
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Edit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotID != 42 {
		t.Errorf("expected update of idea 42, got %d", gotID)
	}
	if gotInput.Title != "New title" || gotInput.Details != "New details" {
		t.Errorf("unexpected input passed to service: %+v", gotInput)
	}
	if loc := rec.Header().Get("Location"); loc != "/ideas" {
		t.Errorf("expected redirect to /ideas, got %s", loc)
	}

	_, successMsg := consumeFlash(t, store, rec)
	if successMsg != "Your idea has been updated" {
		t.Errorf("unexpected flash message: %q", successMsg)
	}
}

func TestHandlerEdit_ValidationFailure(t *testing.T) {
	store := newTestFlashStore(t)
	svc := &mockIdeaService{
		updateFn: func(ctx context.Context, id int64, input UpdateIdeaInput) error {
			return apperror.NewValidation("Please fill out all the required fields")
		},
	}
	h := NewHandler(svc, store)

	c, rec := formRequest(t, "/ideas/edit/42", url.Values{
		"title":   {""},
		"details": {"New details"},
	})
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Edit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/ideas/edit/42" {
		t.Errorf("expected redirect back to the edit form, got %s", loc)
	}

	errMsg, _ := consumeFlash(t, store, rec)
	if errMsg != "Please fill out all the required fields" {
		t.Errorf("unexpected flash message: %q", errMsg)
	}
}

func TestHandlerEdit_InvalidID(t *testing.T) {
	store := newTestFlashStore(t)
	h := NewHandler(&mockIdeaService{}, store)

	c, _ := formRequest(t, "/ideas/edit/abc", url.Values{
		"title":   {"New title"},
		"details": {"New details"},
	})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Edit(c)
	assertAppError(t, err, 400)
}

func TestHandlerDelete_Success(t *testing.T) {
	store := newTestFlashStore(t)
	var gotID int64
	svc := &mockIdeaService{
		deleteFn: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}
	h := NewHandler(svc, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ideas/delete/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotID != 7 {
		t.Errorf("expected delete of idea 7, got %d", gotID)
	}
	if loc := rec.Header().Get("Location"); loc != "/ideas" {
		t.Errorf("expected redirect to /ideas, got %s", loc)
	}

	_, successMsg := consumeFlash(t, store, rec)
	if successMsg != "Your idea has been deleted" {
		t.Errorf("unexpected flash message: %q", successMsg)
	}
}

func TestHandlerDelete_MissingIDStillSucceeds(t *testing.T) {
	// The service reports success for IDs that never existed, so the
	// handler flashes success either way.
	store := newTestFlashStore(t)
	h := NewHandler(&mockIdeaService{}, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ideas/delete/9999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9999")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/ideas" {
		t.Errorf("expected redirect to /ideas, got %s", loc)
	}

	_, successMsg := consumeFlash(t, store, rec)
	if successMsg != "Your idea has been deleted" {
		t.Errorf("unexpected flash message: %q", successMsg)
	}
}
