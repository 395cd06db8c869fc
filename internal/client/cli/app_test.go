package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/salesdesk/internal/client/auth"
	"github.com/dmitrijs2005/salesdesk/internal/client/backupsink"
	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/client/dashboard"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
)

// backend is a scripted REST server: path -> (status, body).
type backend struct {
	mu     sync.Mutex
	routes map[string]reply
	seen   []*http.Request
	bodies []string
}

type reply struct {
	status int
	body   string
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.seen = append(b.seen, r)
	b.bodies = append(b.bodies, string(body))
	rep, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"not found"}`)
		return
	}
	if rep.status == 0 {
		rep.status = http.StatusOK
	}
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (b *backend) set(route string, status int, body string) {
	b.mu.Lock()
	b.routes[route] = reply{status: status, body: body}
	b.mu.Unlock()
}

func (b *backend) last() (*http.Request, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seen[len(b.seen)-1], b.bodies[len(b.bodies)-1]
}

type harness struct {
	app   *App
	out   *bytes.Buffer
	be    *backend
	store session.Store
	dir   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	be := &backend{routes: map[string]reply{
		"POST /auth/login":  {body: `{"token":"T","usuario":{"id":1,"nome":"Ana","email":"a@x"}}`},
		"POST /auth/logout": {status: http.StatusNoContent},
	}}
	srv := httptest.NewServer(be)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	hc := client.New(client.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, store)

	products := services.NewProductService(hc)
	sales := services.NewSaleService(hc)
	dir := t.TempDir()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	app := NewApp(Deps{
		Store:     store,
		Products:  products,
		Sales:     sales,
		Reports:   services.NewReportService(hc),
		Settings:  services.NewSettingsService(hc),
		Profile:   services.NewProfileService(hc),
		Backups:   services.NewBackupService(hc),
		Logs:      services.NewLogService(hc),
		Dashboard: dashboard.NewLoader(products, sales, func() time.Time { return now }),
		Sink:      backupsink.NewFileSink(dir),
	})
	out := &bytes.Buffer{}
	app.out = out
	app.now = func() time.Time { return now }

	ctrl := auth.NewController(services.NewAuthAPI(hc), store, app, nil)
	hc.SetSessionLostHandler(ctrl.SessionLost)
	app.SetAuth(ctrl)
	require.NoError(t, ctrl.Start(context.Background()))

	origPw := getPassword
	getPassword = func(io.Writer) (string, error) { return "pw", nil }
	t.Cleanup(func() { getPassword = origPw })

	return &harness{app: app, out: out, be: be, store: store, dir: dir}
}

// run executes one command with the given answers to its prompts.
func (h *harness) run(t *testing.T, line string, answers ...string) error {
	t.Helper()
	h.app.reader = bufio.NewReader(strings.NewReader(strings.Join(answers, "\n") + "\n"))
	parts := strings.Fields(line)
	return h.app.exec(context.Background(), parts[0], parts[1:])
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	require.NoError(t, h.run(t, "login a@x"))
	require.True(t, h.app.isLoggedIn())
}

func TestApp_LoginAndLogout(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.app.isLoggedIn())
	assert.Equal(t, "(anonymous)", h.app.status())

	h.login(t)
	_, body := h.be.last()
	assert.JSONEq(t, `{"email":"a@x","senha":"pw"}`, body)
	assert.Equal(t, "(Ana home)", h.app.status())
	assert.Contains(t, h.out.String(), "Logged in.")

	require.NoError(t, h.run(t, "logout"))
	assert.False(t, h.app.isLoggedIn())
	_, ok, _ := h.store.Get(context.Background())
	assert.False(t, ok)
	assert.Contains(t, h.out.String(), "Please log in.")
}

func TestApp_LoginRejected(t *testing.T) {
	h := newHarness(t)
	h.be.set("POST /auth/login", http.StatusUnauthorized, `{"error":"credenciais inválidas"}`)

	err := h.run(t, "login a@x")
	require.ErrorIs(t, err, auth.ErrAuthentication)
	assert.Equal(t, "login failed: credenciais inválidas", describeError(err))
	assert.False(t, h.app.isLoggedIn())
}

func TestApp_SessionLostMidCommand(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /produtos", http.StatusUnauthorized, `{"error":"token inválido"}`)

	err := h.run(t, "products")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	assert.False(t, h.app.isLoggedIn())
	assert.Equal(t, "login", h.app.view)
	_, ok, _ := h.store.Get(context.Background())
	assert.False(t, ok)
}

func TestApp_ProductsAndAdd(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /produtos", 0, `[{"id":1,"nome":"Pão","preco":1.5,"quantidade":3}]`)
	h.be.set("POST /produtos", http.StatusCreated, `{"id":2}`)

	require.NoError(t, h.run(t, "products"))
	assert.Contains(t, h.out.String(), "Pão")
	assert.Contains(t, h.out.String(), "R$ 1.50")

	require.NoError(t, h.run(t, "product-add", "Bolo", "chocolate", "25,50", "4"))
	req, body := h.be.last()
	assert.Equal(t, "Bearer T", req.Header.Get("Authorization"))
	assert.JSONEq(t, `{"nome":"Bolo","descricao":"chocolate","preco":25.5,"quantidade":4}`, body)
	assert.Contains(t, h.out.String(), "Product #2 created.")
}

func TestApp_ProductAddValidation(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	err := h.run(t, "product-add", "", "", "1", "1")
	require.Error(t, err)
	assert.Contains(t, describeError(err), "name is required")
}

func TestApp_ProductEditKeepsBlankFields(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /produtos/7", 0, `{"id":7,"nome":"Café","descricao":"moído","preco":12,"quantidade":8}`)
	h.be.set("PUT /produtos/7", 0, `{"id":7}`)

	require.NoError(t, h.run(t, "product-edit 7", "", "", "13", ""))
	_, body := h.be.last()
	assert.JSONEq(t, `{"nome":"Café","descricao":"moído","preco":13,"quantidade":8}`, body)
}

func TestApp_DeleteNeedsConfirmation(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("DELETE /produtos/3", http.StatusNoContent, "")

	require.NoError(t, h.run(t, "product-delete 3", "n"))
	req, _ := h.be.last()
	assert.NotEqual(t, http.MethodDelete, req.Method)

	require.NoError(t, h.run(t, "product-delete 3", "y"))
	req, _ = h.be.last()
	assert.Equal(t, http.MethodDelete, req.Method)
}

func TestApp_SaleAdd(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("POST /vendas", http.StatusCreated,
		`{"id":5,"itens":[{"produto":{"id":1,"preco":2.5},"quantidade":2},{"produto":{"id":4,"preco":1},"quantidade":1}]}`)

	require.NoError(t, h.run(t, "sale-add", "Maria", "1", "2", "4", "1", ""))
	_, body := h.be.last()
	assert.JSONEq(t, `{"cliente":"Maria","itens":[{"produtoId":1,"quantidade":2},{"produtoId":4,"quantidade":1}]}`, body)
	assert.Contains(t, h.out.String(), "Sale #5 recorded, total R$ 6.00.")
}

func TestApp_SaleEditKeepsBlankFields(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /vendas/5", 0,
		`{"id":5,"cliente":"Maria","itens":[{"produto":{"id":1,"nome":"Pão","preco":2.5},"quantidade":2}]}`)
	h.be.set("PUT /vendas/5", 0, `{"id":5}`)

	require.NoError(t, h.run(t, "sale-edit 5", "", "n"))
	req, body := h.be.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.JSONEq(t, `{"cliente":"Maria","itens":[{"produtoId":1,"quantidade":2}]}`, body)
	assert.Contains(t, h.out.String(), "Sale #5 updated.")
}

func TestApp_SaleEditReplacesItems(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /vendas/5", 0,
		`{"id":5,"cliente":"Maria","itens":[{"produto":{"id":1,"preco":2.5},"quantidade":2}]}`)
	h.be.set("PUT /vendas/5", 0, `{"id":5}`)

	require.NoError(t, h.run(t, "sale-edit 5", "João", "y", "3", "1", ""))
	_, body := h.be.last()
	assert.JSONEq(t, `{"cliente":"João","itens":[{"produtoId":3,"quantidade":1}]}`, body)
}

func TestApp_SaleEditRejectsEmptyItems(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /vendas/5", 0, `{"id":5,"cliente":"Maria","itens":[{"produto":{"id":1},"quantidade":1}]}`)

	err := h.run(t, "sale-edit 5", "", "y", "")
	require.Error(t, err)
	assert.Contains(t, describeError(err), "at least one item is required")

	req, _ := h.be.last()
	assert.Equal(t, http.MethodGet, req.Method)
}

func TestApp_SalesByPeriod(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /vendas/periodo/2024-01-01/2024-01-31", 0, `[]`)

	require.NoError(t, h.run(t, "sales-by-period 2024-01-01 2024-01-31"))
	assert.Contains(t, h.out.String(), "No sales.")

	require.Error(t, h.run(t, "sales-by-period 2024-02-01 2024-01-01"))
	require.Error(t, h.run(t, "sales-by-period 2024-02-01"))
}

func TestApp_Dashboard(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /produtos", 0, `[{"id":1,"nome":"A","quantidade":3},{"id":2,"nome":"B","quantidade":10},{"id":3,"nome":"C","quantidade":0}]`)
	h.be.set("GET /vendas", 0, `[{"id":9,"cliente":"Ana","dataVenda":"2024-06-10T11:00:00Z","itens":[{"produto":{"id":1,"preco":4},"quantidade":2}]}]`)

	require.NoError(t, h.run(t, "dashboard"))
	out := h.out.String()
	assert.Contains(t, out, "R$ 8.00")
	assert.Contains(t, out, "Low stock:")
	assert.Contains(t, out, "Recent sales:")
}

func TestApp_LogsQuery(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /logs", 0, `[{"id":1,"nivel":"error","usuario":"ana","acao":"login","detalhes":"falhou"}]`)

	require.NoError(t, h.run(t, "logs level=error failed login"))
	req, _ := h.be.last()
	assert.Equal(t, "error", req.URL.Query().Get("nivel"))
	assert.Equal(t, "failed login", req.URL.Query().Get("busca"))
	assert.Empty(t, req.URL.Query().Get("dataInicio"))
	assert.Contains(t, h.out.String(), "falhou")

	require.NoError(t, h.run(t, "logs level=todos"))
	req, _ = h.be.last()
	assert.Empty(t, req.URL.RawQuery)
}

func TestApp_Report(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /relatorios", 0, `{"vendasPorPeriodo":[{"periodo":"2024-06","total":100}],"produtosMaisVendidos":[{"nome":"Pão","quantidade":40}],"totalVendas":100,"ticketMedio":25}`)

	require.NoError(t, h.run(t, "report period=mensal from=2024-06-01 to=2024-06-30"))
	req, _ := h.be.last()
	q := req.URL.Query()
	assert.Equal(t, "mensal", q.Get("filtro"))
	assert.NotEmpty(t, q.Get("dataInicio"))
	assert.NotEmpty(t, q.Get("dataFim"))
	assert.Contains(t, h.out.String(), "Best sellers:")

	require.Error(t, h.run(t, "report period=yearly"))
}

func TestApp_BackupDownload(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /backups/4/download", 0, "CREATE TABLE produtos;")

	require.NoError(t, h.run(t, "backup-download 4"))

	data, err := os.ReadFile(filepath.Join(h.dir, "backup-4.sql"))
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE produtos;", string(data))
	assert.Contains(t, h.out.String(), "Saved 22 B")
}

func TestApp_ProfileEditUpdatesUser(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /usuarios/perfil", 0, `{"id":1,"nome":"Ana","email":"a@x"}`)
	h.be.set("PUT /usuarios/perfil", 0, `{"id":1,"nome":"Ana Maria","email":"a@x"}`)

	require.NoError(t, h.run(t, "profile-edit", "Ana Maria", "", ""))
	_, body := h.be.last()
	assert.JSONEq(t, `{"nome":"Ana Maria","email":"a@x","senha":"pw"}`, body)

	u, ok := h.app.auth.User()
	require.True(t, ok)
	assert.Equal(t, "Ana Maria", u.Name)
}

func TestApp_SettingsEdit(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.be.set("GET /configuracoes", 0, `{"nomeEmpresa":"Padaria","intervaloBackup":24}`)
	h.be.set("PUT /configuracoes", 0, `{}`)

	answers := []string{"Padaria Central", "", "", "", "", "", "", "true", "", "12"}
	require.NoError(t, h.run(t, "settings-edit", answers...))
	_, body := h.be.last()
	assert.Contains(t, body, `"nomeEmpresa":"Padaria Central"`)
	assert.Contains(t, body, `"notificacoes":true`)
	assert.Contains(t, body, `"intervaloBackup":12`)
}

func TestApp_WhoamiOpaqueToken(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	require.NoError(t, h.run(t, "whoami"))
	assert.Contains(t, h.out.String(), "#1 Ana <a@x>")
	assert.Contains(t, h.out.String(), "Token: opaque")
	assert.Contains(t, h.out.String(), "Saved: ")
}
