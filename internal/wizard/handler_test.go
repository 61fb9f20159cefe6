package wizard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(fallback http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, Flow{
		Navigator: NewNavigator(ownerSchema, RoutesFor("owners"), fixedMinter("owner", 1700000000000, "a1b2c3d4")),
		View: func(_ context.Context, d Draft) any {
			return map[string]string{"fullName": d.Text("firstName") + " " + d.Text("lastName")}
		},
		Fallback: fallback,
	})
	return r
}

func serve(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHandler_EditShowsFieldsAndDraft(t *testing.T) {
	h := newTestRouter(nil)

	rec := serve(t, h, http.MethodGet, "/owners/new?firstName=Ann&phones[]=555-0001", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "editing", body["step"])
	assert.Len(t, body["fields"], len(ownerSchema.Fields()))
	draft := body["draft"].(map[string]any)
	assert.Equal(t, "Ann", draft["firstName"])
	assert.Equal(t, []any{"555-0001"}, draft["phones"])
	assert.Equal(t, "", draft["lastName"])
}

func TestHandler_SubmitJSONRedirectsToVerify(t *testing.T) {
	h := newTestRouter(nil)

	rec := serve(t, h, http.MethodPost, "/owners/new?notes=keep", "application/json",
		`{"type":"individual","organization":"mr-pet","firstName":"Ann","phones":["555-0001","555-0002"],"marketingOptIn":true}`)
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/owners/new/verify", loc.Path)
	q := loc.Query()
	assert.Equal(t, "keep", q.Get("notes"), "campos previos de la query se conservan")
	assert.Equal(t, "Ann", q.Get("firstName"))
	assert.Equal(t, []string{"555-0001", "555-0002"}, q["phones[]"])
	assert.Equal(t, "true", q.Get("marketingOptIn"))
}

func TestHandler_SubmitFormBody(t *testing.T) {
	h := newTestRouter(nil)

	form := url.Values{
		"type":         {"business"},
		"organization": {"vet-care"},
		"petNames[]":   {"Milo", "Luna"},
	}
	rec := serve(t, h, http.MethodPost, "/owners/new", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Milo", "Luna"}, loc.Query()["petNames[]"])
	assert.Equal(t, "business", loc.Query().Get("type"))
}

func TestHandler_SubmitFormClearsUncheckedFlagsAndEmptiedLists(t *testing.T) {
	h := newTestRouter(nil)

	prev := "type=business&organization=vet-care&lastName=Lee&marketingOptIn=true&phones%5B%5D=555-0001"
	form := url.Values{"firstName": {"Ann"}}
	rec := serve(t, h, http.MethodPost, "/owners/new?"+prev, "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	q := loc.Query()
	assert.Equal(t, "false", q.Get("marketingOptIn"))
	assert.NotContains(t, q, "phones[]")
	assert.Equal(t, "Ann", q.Get("firstName"))
	assert.Equal(t, "Lee", q.Get("lastName"), "texto no enviado se conserva")
	assert.Equal(t, "business", q.Get("type"))
}

func TestHandler_SubmitMissingRequired(t *testing.T) {
	h := newTestRouter(nil)

	rec := serve(t, h, http.MethodPost, "/owners/new", "application/json", `{"firstName":"Ann"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, []any{"type", "organization"}, body["missing"])
}

func TestHandler_SubmitBadBodies(t *testing.T) {
	h := newTestRouter(nil)

	for name, body := range map[string]string{
		"invalid json":  `{"firstName":`,
		"unknown field": `{"species":"dog"}`,
		"wrong type":    `{"phones":"555-0001"}`,
		"number":        `{"firstName":3}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, h, http.MethodPost, "/owners/new", "application/json", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_VerifyEditConfirmDetail(t *testing.T) {
	fallbackCalled := false
	h := newTestRouter(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalled = true
		w.WriteHeader(http.StatusTeapot)
	})

	query := ownerSchema.Encode(annLee()).Encode()

	// verify
	rec := serve(t, h, http.MethodGet, "/owners/new/verify?"+query, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "verifying", body["step"])
	assert.Equal(t, "Ann Lee", body["view"].(map[string]any)["fullName"])
	assert.Equal(t, "/owners/new/verify/confirm?"+query, body["confirm"])

	// verify -> edit
	rec = serve(t, h, http.MethodPost, "/owners/new/verify/edit?"+query, "", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/owners/new?"+query, rec.Header().Get("Location"))

	// verify -> confirm
	rec = serve(t, h, http.MethodPost, "/owners/new/verify/confirm?"+query, "", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	detail := rec.Header().Get("Location")
	assert.Equal(t, "/owners/owner-1700000000000-a1b2c3d4?"+query, detail)

	// detalle del draft confirmado
	rec = serve(t, h, http.MethodGet, detail, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "owner-1700000000000-a1b2c3d4", body["id"])
	assert.Equal(t, "confirmed", body["step"])
	assert.Equal(t, false, body["persisted"])
	assert.False(t, fallbackCalled)

	// sin draft en la URL va al fallback
	rec = serve(t, h, http.MethodGet, "/owners/3?page=2", "", "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, fallbackCalled)
}

func TestHandler_DetailWithoutFallback(t *testing.T) {
	h := newTestRouter(nil)
	rec := serve(t, h, http.MethodGet, "/owners/owner-1-abc", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
