//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// FakeGateway records processor calls in memory. Session and account
// references are derived from the idempotency key so a retried call returns
// the same reference, as the processor would.
type FakeGateway struct {
	mu       sync.Mutex
	sessions map[string]shared.CheckoutSessionRequest
	states   map[string]shared.CheckoutSessionState
	refs     map[string]string
	accounts map[string]uuid.UUID
	creates  int
}

func NewFakeGateway() *FakeGateway {
	g := &FakeGateway{}
	g.Reset()
	return g
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions = map[string]shared.CheckoutSessionRequest{}
	g.states = map[string]shared.CheckoutSessionState{}
	g.creates = 0
	g.refs = map[string]string{}
	g.accounts = map[string]uuid.UUID{}
}

func (g *FakeGateway) CreateCheckoutSession(_ context.Context, req shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.creates++
	ref, ok := g.refs[req.IdempotencyKey]
	if !ok {
		ref = fmt.Sprintf("cs_test_%d", len(g.refs)+1)
		g.refs[req.IdempotencyKey] = ref
		g.states[ref] = shared.CheckoutSessionOpen
	}
	g.sessions[ref] = req
	return &shared.CheckoutSessionResult{
		SessionRef:  ref,
		RedirectURL: "https://checkout.test/" + ref,
	}, nil
}

func (g *FakeGateway) GetCheckoutSession(_ context.Context, sessionRef string) (*shared.CheckoutSessionStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, ok := g.states[sessionRef]
	if !ok {
		return nil, fmt.Errorf("no such checkout session: %s", sessionRef)
	}
	return &shared.CheckoutSessionStatus{
		SessionRef:  sessionRef,
		RedirectURL: "https://checkout.test/" + sessionRef,
		State:       state,
	}, nil
}

// SetSessionState moves a session as the hosted page would.
func (g *FakeGateway) SetSessionState(ref string, state shared.CheckoutSessionState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.states[ref] = state
}

// SessionCreates counts CreateCheckoutSession calls, replays included.
func (g *FakeGateway) SessionCreates() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.creates
}

func (g *FakeGateway) CreateAccount(_ context.Context, ownerID uuid.UUID, idempotencyKey string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if ref, ok := g.refs[idempotencyKey]; ok {
		return ref, nil
	}
	ref := fmt.Sprintf("acct_test_%d", len(g.accounts)+1)
	g.refs[idempotencyKey] = ref
	g.accounts[ref] = ownerID
	return ref, nil
}

func (g *FakeGateway) CreateOnboardingLink(_ context.Context, accountRef string) (string, error) {
	return "https://connect.test/onboarding/" + accountRef, nil
}

func (g *FakeGateway) Session(ref string) (shared.CheckoutSessionRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	req, ok := g.sessions[ref]
	return req, ok
}

func (g *FakeGateway) AccountCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.accounts)
}
