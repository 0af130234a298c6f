package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/shopcanvas/builder-backend/internal/data/repos"
	"github.com/shopcanvas/builder-backend/internal/data/repos/testutil"
	"github.com/shopcanvas/builder-backend/internal/domain"
	"github.com/shopcanvas/builder-backend/internal/platform/apierr"
	"github.com/shopcanvas/builder-backend/internal/platform/cache"
)

type fakeCatalogClient struct {
	configured  bool
	products    []domain.ProductRecord
	collections []domain.CollectionRecord
	err         error
}

func (f *fakeCatalogClient) Configured() bool { return f.configured }

func (f *fakeCatalogClient) FetchProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeCatalogClient) FetchCollections(ctx context.Context) ([]domain.CollectionRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.collections, nil
}

type memCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMemCache() *memCache { return &memCache{store: map[string][]byte{}} }

func (m *memCache) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.store[key]
	return v, ok
}

func (m *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = value
}

type liveFixture struct {
	tx       *gorm.DB
	sections SectionService
	pdp      PdpService
	live     LiveService
}

func newLiveFixture(t *testing.T, client CatalogClient, payloadCache cache.Cache, policies map[string]FallbackPolicy) *liveFixture {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	logg := testutil.Logger(t)

	sections := NewSectionService(tx, logg,
		repos.NewSliderRepo(tx, logg),
		repos.NewSharkTankRepo(tx, logg),
		repos.NewNewDropsRepo(tx, logg),
		repos.NewHeaderRepo(tx, logg),
		repos.NewCategoryRepo(tx, logg),
	)
	pdp := NewPdpService(tx, logg, repos.NewPdpConfigRepo(tx, logg))
	catalog := NewCatalogService(client, logg)
	live := NewLiveService(logg, sections,
		repos.NewTemplateRepo(tx, logg),
		pdp, catalog, payloadCache, time.Minute, policies)

	return &liveFixture{tx: tx, sections: sections, pdp: pdp, live: live}
}

func decodePayload(t *testing.T, raw []byte) LivePayload {
	t.Helper()
	var p LivePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return p
}

func TestLiveSliderDefaultWhenUnconfigured(t *testing.T) {
	fx := newLiveFixture(t, &fakeCatalogClient{}, nil, nil)

	raw, err := fx.live.Slider(context.Background())
	if err != nil {
		t.Fatalf("slider: %v", err)
	}
	p := decodePayload(t, raw)
	if !p.Success || p.Source != "default" || p.Section != "slider" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestLiveSliderServesEnabledItemsOnly(t *testing.T) {
	fx := newLiveFixture(t, &fakeCatalogClient{}, nil, nil)
	ctx := context.Background()

	items := []*domain.SliderItem{
		{Title: "Sale", ImageURL: "https://img/sale.png", Enabled: true},
		{Title: "Hidden", ImageURL: "https://img/hidden.png", Enabled: false},
	}
	if err := fx.sections.UpdateSlider(ctx, true, items); err != nil {
		t.Fatalf("update slider: %v", err)
	}

	raw, err := fx.live.Slider(ctx)
	if err != nil {
		t.Fatalf("slider: %v", err)
	}
	p := decodePayload(t, raw)
	if !p.Success || p.Source != "live" {
		t.Fatalf("unexpected payload: %+v", p)
	}
	data := p.Data.(map[string]any)
	slides := data["slides"].([]any)
	if len(slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(slides))
	}
	if slides[0].(map[string]any)["title"] != "Sale" {
		t.Fatalf("unexpected slide: %+v", slides[0])
	}
}

func TestLiveSharkTankFallbackOnUpstreamFailure(t *testing.T) {
	client := &fakeCatalogClient{configured: true, err: apierr.Upstream(errors.New("shopify unreachable"))}
	fx := newLiveFixture(t, client, nil, nil)
	ctx := context.Background()

	items := []*domain.SharkTankItem{{ProductID: "gid://shopify/Product/1", Enabled: true}}
	if err := fx.sections.UpdateSharkTank(ctx, true, "As Seen On TV", items); err != nil {
		t.Fatalf("update shark tank: %v", err)
	}

	raw, err := fx.live.SharkTank(ctx)
	if err != nil {
		t.Fatalf("expected fallback payload, got error %v", err)
	}
	p := decodePayload(t, raw)
	if p.Success || p.Source != "fallback" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestLiveSharkTankFailClosedPolicy(t *testing.T) {
	client := &fakeCatalogClient{configured: true, err: apierr.Upstream(errors.New("shopify unreachable"))}
	fx := newLiveFixture(t, client, nil, map[string]FallbackPolicy{"shark-tank": FailClosed})
	ctx := context.Background()

	items := []*domain.SharkTankItem{{ProductID: "gid://shopify/Product/1", Enabled: true}}
	if err := fx.sections.UpdateSharkTank(ctx, true, "As Seen On TV", items); err != nil {
		t.Fatalf("update shark tank: %v", err)
	}

	if _, err := fx.live.SharkTank(ctx); !apierr.Is(err, apierr.CodeUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestLiveSharkTankResolvesProducts(t *testing.T) {
	client := &fakeCatalogClient{
		configured: true,
		products: []domain.ProductRecord{
			{ID: "p-1", Title: "First"},
			{ID: "p-2", Title: "Second"},
		},
	}
	fx := newLiveFixture(t, client, nil, nil)
	ctx := context.Background()

	items := []*domain.SharkTankItem{
		{ProductID: "p-2", Enabled: true},
		{ProductID: "p-gone", Enabled: true},
	}
	if err := fx.sections.UpdateSharkTank(ctx, true, "", items); err != nil {
		t.Fatalf("update shark tank: %v", err)
	}

	raw, err := fx.live.SharkTank(ctx)
	if err != nil {
		t.Fatalf("shark tank: %v", err)
	}
	p := decodePayload(t, raw)
	if !p.Success || p.Source != "live" {
		t.Fatalf("unexpected payload: %+v", p)
	}
	data := p.Data.(map[string]any)
	if data["title"] != "Shark Tank" {
		t.Fatalf("expected default title, got %v", data["title"])
	}
	products := data["products"].([]any)
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	// Unknown id degrades to the catalog's first product.
	if products[1].(map[string]any)["id"] != "p-1" {
		t.Fatalf("unexpected degrade target: %+v", products[1])
	}
}

func TestMobilePdpGating(t *testing.T) {
	fx := newLiveFixture(t, &fakeCatalogClient{}, nil, nil)
	ctx := context.Background()

	raw, err := fx.live.MobilePdp(ctx)
	if err != nil {
		t.Fatalf("mobile pdp: %v", err)
	}
	p := decodePayload(t, raw)
	if p.Source != "default" {
		t.Fatalf("inactive store must serve the default layout, got %+v", p)
	}
	data := p.Data.(map[string]any)
	if data["active"] != false {
		t.Fatalf("expected active=false, got %v", data["active"])
	}

	components := []domain.ComponentInstance{
		{ID: "p1", Type: "ProductGallery", Props: map[string]any{}},
		{ID: "p2", Type: "AddToCart", Props: map[string]any{}},
	}
	if _, err := fx.pdp.Update(ctx, true, components); err != nil {
		t.Fatalf("activate: %v", err)
	}

	raw, err = fx.live.MobilePdp(ctx)
	if err != nil {
		t.Fatalf("mobile pdp: %v", err)
	}
	p = decodePayload(t, raw)
	if p.Source != "live" {
		t.Fatalf("active store must serve the custom design, got %+v", p)
	}
	data = p.Data.(map[string]any)
	if data["active"] != true {
		t.Fatalf("expected active=true, got %v", data["active"])
	}
	resolved := data["components"].([]any)
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved components, got %d", len(resolved))
	}
}

func TestMobileHomeServesNewestHomepageTemplate(t *testing.T) {
	fx := newLiveFixture(t, &fakeCatalogClient{}, nil, nil)
	ctx := context.Background()
	logg := testutil.Logger(t)
	templates := NewTemplateService(fx.tx, logg, repos.NewTemplateRepo(fx.tx, logg))

	raw, err := fx.live.MobileHome(ctx)
	if err != nil {
		t.Fatalf("mobile home: %v", err)
	}
	if p := decodePayload(t, raw); p.Source != "default" {
		t.Fatalf("empty store must serve default layout, got %+v", p)
	}

	if _, err := templates.Save(ctx, "Current Home", domain.DesignHomepage, homepageComponents()); err != nil {
		t.Fatalf("save template: %v", err)
	}

	raw, err = fx.live.MobileHome(ctx)
	if err != nil {
		t.Fatalf("mobile home: %v", err)
	}
	p := decodePayload(t, raw)
	if p.Source != "live" {
		t.Fatalf("expected live payload, got %+v", p)
	}
	data := p.Data.(map[string]any)
	if data["name"] != "Current Home" {
		t.Fatalf("unexpected template: %v", data["name"])
	}
}

func TestLivePayloadsAreCached(t *testing.T) {
	mc := newMemCache()
	fx := newLiveFixture(t, &fakeCatalogClient{}, mc, nil)
	ctx := context.Background()

	first, err := fx.live.Header(ctx)
	if err != nil {
		t.Fatalf("header: %v", err)
	}

	// A config change after the first read stays invisible until the TTL
	// expires.
	if err := fx.sections.UpdateHeader(ctx, domain.HeaderConfig{
		ID: domain.SectionConfigID, Enabled: true, StoreName: "Renamed",
	}); err != nil {
		t.Fatalf("update header: %v", err)
	}

	second, err := fx.live.Header(ctx)
	if err != nil {
		t.Fatalf("header: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("expected cached payload on second read")
	}
}
