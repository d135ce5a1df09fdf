package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"invitedesk/internal/domain"
)

// In-memory fakes shared by the service tests. The invitation and slot fakes
// reproduce the conditional-update semantics of the postgres repositories,
// including behavior under concurrent callers.

type fakeInvitationRepo struct {
	mu     sync.Mutex
	byCode map[string]*domain.Invitation
}

func newFakeInvitationRepo(invs ...*domain.Invitation) *fakeInvitationRepo {
	r := &fakeInvitationRepo{byCode: map[string]*domain.Invitation{}}
	for _, inv := range invs {
		cp := *inv
		r.byCode[inv.Code] = &cp
	}
	return r
}

func (r *fakeInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCode[inv.Code]; ok {
		return domain.ErrInvalidInput
	}
	cp := *inv
	r.byCode[inv.Code] = &cp
	return nil
}

func (r *fakeInvitationRepo) GetByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.byCode[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvitationRepo) Redeem(ctx context.Context, code, usedBy string, usedAt time.Time) (*domain.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.byCode[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if inv.IsUsed {
		return nil, domain.ErrInvitationUsed
	}
	inv.IsUsed = true
	inv.UsedBy = usedBy
	inv.UsedAt = &usedAt
	cp := *inv
	return &cp, nil
}

func (r *fakeInvitationRepo) ListByCreator(ctx context.Context, createdBy string) ([]*domain.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var invs []*domain.Invitation
	for _, inv := range r.byCode {
		if inv.CreatedBy == createdBy {
			cp := *inv
			invs = append(invs, &cp)
		}
	}
	return invs, nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	byID     map[string]*domain.Account
	slots    map[string]*domain.SlotGrant // keyed accountID + "/" + category
	listErr  error
	slotsErr error
}

func newFakeAccountRepo(accounts ...*domain.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{
		byID:  map[string]*domain.Account{},
		slots: map[string]*domain.SlotGrant{},
	}
	for _, a := range accounts {
		r.byID[a.ID] = a
	}
	return r
}

func slotKey(accountID string, category domain.AttendeeCategory) string {
	return accountID + "/" + string(category)
}

func (r *fakeAccountRepo) setSlots(accountID string, category domain.AttendeeCategory, total, used int) {
	r.slots[slotKey(accountID, category)] = &domain.SlotGrant{
		AccountID: accountID, Category: category, Total: total, Used: used,
	}
}

func (r *fakeAccountRepo) usedSlots(accountID string, category domain.AttendeeCategory) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.slots[slotKey(accountID, category)]; ok {
		return g.Used
	}
	return 0
}

func (r *fakeAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == a.Email {
			return domain.ErrDuplicateEmail
		}
	}
	if a.ID == "" {
		a.ID = fmt.Sprintf("acc-%d", len(r.byID)+1)
	}
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAccountRepo) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Role = role
	return nil
}

func (r *fakeAccountRepo) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var accounts []*domain.Account
	for _, a := range r.byID {
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (r *fakeAccountRepo) ListByRoles(ctx context.Context, roles []domain.Role) ([]*domain.Account, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var accounts []*domain.Account
	for _, a := range r.byID {
		for _, role := range roles {
			if a.Role == role {
				accounts = append(accounts, a)
				break
			}
		}
	}
	return accounts, nil
}

func (r *fakeAccountRepo) GetSlots(ctx context.Context, accountID string) ([]*domain.SlotGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var grants []*domain.SlotGrant
	for _, g := range r.slots {
		if g.AccountID == accountID {
			cp := *g
			grants = append(grants, &cp)
		}
	}
	return grants, nil
}

func (r *fakeAccountRepo) GetSlot(ctx context.Context, accountID string, category domain.AttendeeCategory) (*domain.SlotGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.slots[slotKey(accountID, category)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeAccountRepo) UpsertSlotTotal(ctx context.Context, accountID string, category domain.AttendeeCategory, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.slots[slotKey(accountID, category)]; ok {
		g.Total = total
		return nil
	}
	r.slots[slotKey(accountID, category)] = &domain.SlotGrant{AccountID: accountID, Category: category, Total: total}
	return nil
}

func (r *fakeAccountRepo) AddSlotTotal(ctx context.Context, accountID string, category domain.AttendeeCategory, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.slots[slotKey(accountID, category)]; ok {
		g.Total += delta
		return nil
	}
	r.slots[slotKey(accountID, category)] = &domain.SlotGrant{AccountID: accountID, Category: category, Total: delta}
	return nil
}

func (r *fakeAccountRepo) ReserveSlots(ctx context.Context, accountID string, category domain.AttendeeCategory, count int) error {
	if r.slotsErr != nil {
		return r.slotsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.slots[slotKey(accountID, category)]
	if !ok || g.Used+count > g.Total {
		return domain.ErrInsufficientSlots
	}
	g.Used += count
	return nil
}

func (r *fakeAccountRepo) ReleaseSlots(ctx context.Context, accountID string, category domain.AttendeeCategory, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.slots[slotKey(accountID, category)]
	if !ok {
		return nil
	}
	g.Used -= count
	if g.Used < 0 {
		g.Used = 0
	}
	return nil
}

type fakeAttendeeRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Attendee
	byEmail   map[string]string
	nextID    int
	deleted   []string
	createErr map[string]error // keyed by email, overrides normal create
	deleteErr map[string]error // keyed by attendee ID
}

func newFakeAttendeeRepo() *fakeAttendeeRepo {
	return &fakeAttendeeRepo{
		byID:      map[string]*domain.Attendee{},
		byEmail:   map[string]string{},
		createErr: map[string]error{},
		deleteErr: map[string]error{},
	}
}

func (r *fakeAttendeeRepo) seed(email string) {
	r.nextID++
	id := fmt.Sprintf("att-%d", r.nextID)
	r.byID[id] = &domain.Attendee{ID: id, Email: email}
	r.byEmail[email] = id
}

func (r *fakeAttendeeRepo) Create(ctx context.Context, a *domain.Attendee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.createErr[a.Email]; ok {
		return err
	}
	if _, ok := r.byEmail[a.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	r.nextID++
	a.ID = fmt.Sprintf("att-%d", r.nextID)
	cp := *a
	r.byID[a.ID] = &cp
	r.byEmail[a.Email] = a.ID
	return nil
}

func (r *fakeAttendeeRepo) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAttendeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Attendee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *fakeAttendeeRepo) UpdateStatus(ctx context.Context, id string, status domain.AttendeeStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeAttendeeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.deleteErr[id]; ok {
		return err
	}
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byEmail, a.Email)
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeAttendeeRepo) ListByBatchID(ctx context.Context, batchID string) ([]*domain.Attendee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var attendees []*domain.Attendee
	for _, a := range r.byID {
		if a.BatchID == batchID {
			cp := *a
			attendees = append(attendees, &cp)
		}
	}
	return attendees, nil
}

func (r *fakeAttendeeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

type fakeNotificationRepo struct {
	mu        sync.Mutex
	created   []*domain.Notification
	createErr error
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.created {
		if n.RecipientID == recipientID && (!unreadOnly || !n.IsRead) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, recipientID string) error {
	return nil
}

// fakeNotifier records events so tests can assert on fan-out triggers without
// standing up the full notifier.
type fakeNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (n *fakeNotifier) Notify(ctx context.Context, event domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *fakeNotifier) ListForAccount(ctx context.Context, account *domain.Account, unreadOnly bool) ([]*domain.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, account *domain.Account, notificationID string) error {
	return nil
}

func (n *fakeNotifier) kinds() []domain.EventKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	var kinds []domain.EventKind
	for _, e := range n.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type fakeEmailService struct {
	mu      sync.Mutex
	sent    []string
	sendErr error
}

func (s *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeEmailData) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, data.Email)
	return nil
}

type fakeSlotRequestRepo struct {
	mu     sync.Mutex
	byID   map[string]*domain.SlotRequest
	nextID int
}

func newFakeSlotRequestRepo() *fakeSlotRequestRepo {
	return &fakeSlotRequestRepo{byID: map[string]*domain.SlotRequest{}}
}

func (r *fakeSlotRequestRepo) Create(ctx context.Context, req *domain.SlotRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	req.ID = fmt.Sprintf("req-%d", r.nextID)
	cp := *req
	r.byID[req.ID] = &cp
	return nil
}

func (r *fakeSlotRequestRepo) GetByID(ctx context.Context, id string) (*domain.SlotRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *fakeSlotRequestRepo) UpdateStatusIfPending(ctx context.Context, id string, status domain.SlotRequestStatus, resolvedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.byID[id]
	if !ok || req.Status != domain.SlotRequestPending {
		return domain.ErrNotFound
	}
	req.Status = status
	req.ResolvedBy = resolvedBy
	return nil
}

func (r *fakeSlotRequestRepo) ListByAccountID(ctx context.Context, accountID string) ([]*domain.SlotRequest, error) {
	return nil, nil
}

func (r *fakeSlotRequestRepo) ListPending(ctx context.Context) ([]*domain.SlotRequest, error) {
	return nil, nil
}
