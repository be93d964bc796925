package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	testhelpers "github.com/polkiloo/orderdesk/internal/test"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

func newFacade(health HealthChecker) (*OrderDeskFacade, *testhelpers.OrderRepositoryStub, *testhelpers.NotifierStub) {
	repo := &testhelpers.OrderRepositoryStub{}
	notifier := &testhelpers.NotifierStub{}
	submissions := usecase.NewSubmissionUseCase(repo, model.DefaultCatalog(), model.PriceSourceCatalog, notifier, discardLogger())
	admin := usecase.NewAdminUseCase(repo, discardLogger())
	creds := testhelpers.CredentialRepositoryStub{Credential: &model.Credential{Operator: "operator", PasswordHash: "hash:secret", Role: model.RoleAdmin}}
	auth := usecase.NewAuthUseCase(creds, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, nil)
	return NewOrderDeskFacade(submissions, admin, auth, health), repo, notifier
}

func submission(name string) model.Submission {
	return model.Submission{
		Service:       "social-media",
		Package:       "basic",
		Contact:       model.ContactDetails{Name: name, Email: testhelpers.RandomEmail()},
		PaymentMethod: "bank",
	}
}

func TestOrderDeskFacadeOrderLifecycle(t *testing.T) {
	facade, repo, notifier := newFacade(nil)
	ctx := context.Background()

	if facade.PriceSource() != model.PriceSourceCatalog || facade.Catalog() == nil {
		t.Fatalf("unexpected catalog configuration")
	}

	first, err := facade.SubmitOrder(ctx, submission("Ada"))
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	second, err := facade.SubmitOrder(ctx, submission("Grace"))
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if len(notifier.Orders) != 2 {
		t.Fatalf("expected two notifications, got %d", len(notifier.Orders))
	}

	orders, err := facade.AdminOrders(ctx, model.OrderFilter{Search: "grace"})
	if err != nil {
		t.Fatalf("admin orders returned error: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != second.ID {
		t.Fatalf("unexpected filtered orders %+v", orders)
	}

	if err := facade.UpdateOrderStatus(ctx, first.ID, "in-progress"); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if err := facade.UpdateOrderNotes(ctx, first.ID, "kick-off call booked"); err != nil {
		t.Fatalf("update notes returned error: %v", err)
	}

	stats, err := facade.OrderStats(ctx)
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if stats.Total != 2 || stats.InProgress != 1 || stats.New != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if err := facade.DeleteOrder(ctx, second.ID, false); !errors.Is(err, domainErrors.ErrConfirmationRequired) {
		t.Fatalf("expected confirmation error, got %v", err)
	}
	if err := facade.DeleteOrder(ctx, second.ID, true); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if got := repo.Stored(); len(got) != 1 || got[0].Notes != "kick-off call booked" {
		t.Fatalf("unexpected stored orders %+v", got)
	}

	var buf bytes.Buffer
	name, err := facade.ExportOrders(ctx, &buf)
	if err != nil {
		t.Fatalf("export returned error: %v", err)
	}
	if name == "" || !bytes.Contains(buf.Bytes(), []byte(first.ID)) || bytes.Contains(buf.Bytes(), []byte(second.ID)) {
		t.Fatalf("unexpected export %q: %s", name, buf.String())
	}
}

func TestOrderDeskFacadeAuth(t *testing.T) {
	facade, _, _ := newFacade(nil)

	session, err := facade.Login(context.Background(), "secret")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	parsed, err := facade.ParseToken(session.Token)
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if parsed.Role != model.RoleAdmin {
		t.Fatalf("unexpected role %q", parsed.Role)
	}

	if _, err := facade.Login(context.Background(), "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestOrderDeskFacadeHealthCheck(t *testing.T) {
	facade, _, _ := newFacade(nil)
	if err := facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("expected healthy without checker, got %v", err)
	}

	down := errors.New("db down")
	facade, _, _ = newFacade(testhelpers.HealthFacadeStub{Err: down})
	if err := facade.HealthCheck(context.Background()); !errors.Is(err, down) {
		t.Fatalf("expected checker error, got %v", err)
	}
}
