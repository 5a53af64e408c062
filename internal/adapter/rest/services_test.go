package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simbu-console/internal/core/domain"
)

func campaignCreateFixture() domain.CampaignCreate {
	return domain.CampaignCreate{Name: "Promo", Text: "Olá", To: []string{}, SendNow: true}
}

func TestCampaignCreatePayload(t *testing.T) {
	var body map[string]any
	r := chi.NewRouter()
	r.Post("/sms/campaigns", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		w.Write([]byte(`{"id_campanha":10,"nome_campanha":"Promo","sms_texto":"Olá","sms_ativo":1,"email_ativo":0}`))
	})

	c := testClient(t, r, nil, nil)
	created, err := NewCampaigns(c).Create(context.Background(), campaignCreateFixture())
	require.NoError(t, err)

	assert.Equal(t, 10, created.ID)
	assert.Equal(t, "Promo", body["nome"])
	assert.Equal(t, "Olá", body["texto"])
	assert.Equal(t, true, body["send_now"])
	to, ok := body["to"].([]any)
	require.True(t, ok, "recipients must be an empty array, not null")
	assert.Empty(t, to)
}

func TestCampaignSendAndResendPaths(t *testing.T) {
	var paths []string
	r := chi.NewRouter()
	r.Post("/sms/send-group/{group}/campaign/{campaign}", func(w http.ResponseWriter, req *http.Request) {
		paths = append(paths, req.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/sms/campaigns/{campaign}/resend/{group}", func(w http.ResponseWriter, req *http.Request) {
		paths = append(paths, req.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	c := testClient(t, r, nil, nil)
	svc := NewCampaigns(c)
	require.NoError(t, svc.SendToGroup(context.Background(), 10, 7))
	require.NoError(t, svc.Resend(context.Background(), 10, 7))

	// Group comes first on send-group, campaign first on resend.
	assert.Equal(t, []string{"/sms/send-group/7/campaign/10", "/sms/campaigns/10/resend/7"}, paths)
}

func TestScheduleCreateRoute(t *testing.T) {
	var body domain.ScheduleCreate
	r := chi.NewRouter()
	r.Post("/sms/schedule", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		w.Write([]byte(`{"id_agendamento":5,"data_hora":"2026-07-01T09:00:00","id_campanha":10,"id_grupo":7,"enviado":false}`))
	})

	c := testClient(t, r, nil, nil)
	out, err := NewSchedules(c).Create(context.Background(), domain.ScheduleCreate{
		CampaignID: 10, GroupID: 7, DateTime: domain.ComposeScheduleTime("2026-07-01", "09:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-07-01T09:00:00", body.DateTime)
	assert.Equal(t, 5, out.ID)
	assert.False(t, out.Sent)
}

func TestGroupLinkRoutes(t *testing.T) {
	var linkPath, unlinkPath string
	var multiBody domain.LinkContacts
	r := chi.NewRouter()
	r.Post("/management/link/{contact}/{group}", func(w http.ResponseWriter, req *http.Request) {
		linkPath = req.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/management/link-multiple/{group}", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&multiBody))
		w.WriteHeader(http.StatusNoContent)
	})
	r.Delete("/management/unlink/{contact}/{group}", func(w http.ResponseWriter, req *http.Request) {
		unlinkPath = req.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	c := testClient(t, r, nil, nil)
	svc := NewGroups(c)
	require.NoError(t, svc.LinkContact(context.Background(), 7, 33))
	require.NoError(t, svc.LinkContacts(context.Background(), 7, []int{1, 2, 3}))
	require.NoError(t, svc.UnlinkContact(context.Background(), 7, 33))

	assert.Equal(t, "/management/link/33/7", linkPath)
	assert.Equal(t, "/management/unlink/33/7", unlinkPath)
	assert.Equal(t, []int{1, 2, 3}, multiBody.ContactIDs)
}

func TestMessageFilterQuery(t *testing.T) {
	var query map[string][]string
	r := chi.NewRouter()
	r.Get("/sms/campaigns/{id}/mensagens", func(w http.ResponseWriter, req *http.Request) {
		query = req.URL.Query()
		w.Write([]byte(`{"total":0,"page":1,"per_page":25,"items":[]}`))
	})

	c := testClient(t, r, nil, nil)
	skip, limit, contact := 50, 25, 4
	_, err := NewMessages(c).ListByCampaign(context.Background(), 10, domain.MessageFilters{
		Skip:      &skip,
		Limit:     &limit,
		Status:    domain.MessageStatusFailed,
		ContactID: &contact,
		DateFrom:  "2026-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"50"}, query["skip"])
	assert.Equal(t, []string{"25"}, query["limit"])
	assert.Equal(t, []string{"failed"}, query["status"])
	assert.Equal(t, []string{"4"}, query["id_contacto"])
	assert.Equal(t, []string{"2026-01-01"}, query["data_inicio"])
	_, present := query["id_campanha"]
	assert.False(t, present, "campaign filter stays out of the by-campaign route")
	_, present = query["data_fim"]
	assert.False(t, present)
}

func TestPermissionCreateUsesQueryParam(t *testing.T) {
	var name string
	var hasBody bool
	r := chi.NewRouter()
	r.Post("/admin/permissions", func(w http.ResponseWriter, req *http.Request) {
		name = req.URL.Query().Get("nome_grupo")
		buf := make([]byte, 1)
		n, _ := req.Body.Read(buf)
		hasBody = n > 0
		w.Write([]byte(`{"id_permissao":2,"nome_grupo":"Gestores"}`))
	})

	c := testClient(t, r, nil, nil)
	p, err := NewAdmin(c).CreatePermission(context.Background(), "Gestores")
	require.NoError(t, err)

	assert.Equal(t, "Gestores", name)
	assert.False(t, hasBody)
	assert.Equal(t, 2, p.ID)
}

func TestAuthRegisterDefaultsPermission(t *testing.T) {
	var body map[string]any
	r := chi.NewRouter()
	r.Post("/admin/users", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		w.Write([]byte(`{"id_utilizador":3,"utilizador":"carla","email":"c@d.e","activo":1,"id_permissao":1}`))
	})

	c := testClient(t, r, nil, nil)
	u, err := NewAuth(c).Register(context.Background(), domain.UserCreate{
		Username: "carla", Password: "segredo", Email: "c@d.e",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(1), body["id_permissao"])
	assert.Equal(t, 3, u.ID)
}
