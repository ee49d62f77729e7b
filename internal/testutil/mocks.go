package testutil

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// In-memory repository mocks for service tests. They mirror the
// behavior the real repositories guarantee: generated ids, owner
// scoping, newest-first ordering, and domain not-found errors.

// MockUserRepository is an in-memory domain.UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by id
	seq   int
}

// NewMockUserRepository creates an empty mock user repository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

// AddUser seeds a user directly
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) GetByID(id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetBySubject(subject string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findBySubject(subject)
}

func (m *MockUserRepository) findBySubject(subject string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Subject == subject {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) CreateOrGetBySubject(subject, email string, name, avatarURL *string, provider domain.Provider) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, err := m.findBySubject(subject); err == nil {
		return existing, nil
	}

	m.seq++
	now := time.Now().UTC()
	user := &domain.User{
		ID:        fmt.Sprintf("user-%d", m.seq),
		Subject:   subject,
		Email:     email,
		Name:      name,
		AvatarURL: avatarURL,
		Provider:  provider,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if provider != domain.ProviderGuest {
		user.Subscription = domain.NewTrialSubscription(now)
	}
	m.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) UpdateName(subject string, name string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Subject == subject {
			user.Name = &name
			user.UpdatedAt = time.Now().UTC()
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) UpdateSubscription(id string, sub *domain.Subscription) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user.Subscription = sub
	user.UpdatedAt = time.Now().UTC()
	copied := *user
	return &copied, nil
}

// MockWorkspaceRepository is an in-memory domain.WorkspaceRepository
type MockWorkspaceRepository struct {
	mu         sync.Mutex
	workspaces map[string]*domain.Workspace
	seq        int
}

// NewMockWorkspaceRepository creates an empty mock workspace repository
func NewMockWorkspaceRepository() *MockWorkspaceRepository {
	return &MockWorkspaceRepository{workspaces: make(map[string]*domain.Workspace)}
}

// AddWorkspace seeds a workspace directly
func (m *MockWorkspaceRepository) AddWorkspace(workspace *domain.Workspace) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workspaces[workspace.ID] = workspace
}

func (m *MockWorkspaceRepository) GetByID(id string) (*domain.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ws, ok := m.workspaces[id]; ok {
		copied := *ws
		return &copied, nil
	}
	return nil, domain.ErrWorkspaceNotFound
}

func (m *MockWorkspaceRepository) ListByOwner(ownerID string) ([]*domain.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Workspace
	for _, ws := range m.workspaces {
		if ws.OwnerID == ownerID {
			copied := *ws
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MockWorkspaceRepository) Create(workspace *domain.Workspace) (*domain.Workspace, error) {
	if err := workspace.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	rec := *workspace
	rec.ID = fmt.Sprintf("ws-%d", m.seq)
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	m.workspaces[rec.ID] = &rec
	copied := rec
	return &copied, nil
}

func (m *MockWorkspaceRepository) Update(workspace *domain.Workspace) (*domain.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.workspaces[workspace.ID]
	if !ok {
		return nil, domain.ErrWorkspaceNotFound
	}
	rec := *workspace
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	m.workspaces[rec.ID] = &rec
	copied := rec
	return &copied, nil
}

func (m *MockWorkspaceRepository) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.workspaces, id)
	return nil
}

// docMock implements the shared shape of the content repositories
type docMock[T any] struct {
	mu       sync.Mutex
	records  map[string]*T
	seq      int
	prefix   string
	ownerOf  func(*T) string
	idOf     func(*T) string
	setID    func(*T, string)
	ageOf    func(*T) time.Time
	setAge   func(*T, time.Time)
	notFound error
}

func (m *docMock[T]) get(id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.records[id]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, m.notFound
}

func (m *docMock[T]) list(ownerID string) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*T
	for _, rec := range m.records {
		if m.ownerOf(rec) == ownerID {
			copied := *rec
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.ageOf(out[i]).After(m.ageOf(out[j])) })
	return out, nil
}

func (m *docMock[T]) create(rec *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	copied := *rec
	m.setID(&copied, fmt.Sprintf("%s-%d", m.prefix, m.seq))
	m.setAge(&copied, time.Now().UTC())
	m.records[m.idOf(&copied)] = &copied
	out := copied
	return &out, nil
}

func (m *docMock[T]) update(rec *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.records[m.idOf(rec)]
	if !ok {
		return nil, m.notFound
	}
	copied := *rec
	m.setAge(&copied, m.ageOf(existing))
	m.records[m.idOf(&copied)] = &copied
	out := copied
	return &out, nil
}

func (m *docMock[T]) delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

// MockAutomationRepository is an in-memory domain.AutomationRepository
type MockAutomationRepository struct {
	inner docMock[domain.Automation]
}

// NewMockAutomationRepository creates an empty mock automation repository
func NewMockAutomationRepository() *MockAutomationRepository {
	return &MockAutomationRepository{inner: docMock[domain.Automation]{
		records:  make(map[string]*domain.Automation),
		prefix:   "automation",
		ownerOf:  func(a *domain.Automation) string { return a.OwnerID },
		idOf:     func(a *domain.Automation) string { return a.ID },
		setID:    func(a *domain.Automation, id string) { a.ID = id },
		ageOf:    func(a *domain.Automation) time.Time { return a.CreatedAt },
		setAge:   func(a *domain.Automation, t time.Time) { a.CreatedAt = t },
		notFound: domain.ErrAutomationNotFound,
	}}
}

func (m *MockAutomationRepository) GetByID(id string) (*domain.Automation, error) {
	return m.inner.get(id)
}

func (m *MockAutomationRepository) ListByOwner(ownerID string) ([]*domain.Automation, error) {
	return m.inner.list(ownerID)
}

func (m *MockAutomationRepository) Create(automation *domain.Automation) (*domain.Automation, error) {
	if err := automation.Validate(); err != nil {
		return nil, err
	}
	if automation.Status == "" {
		automation.Status = domain.AutomationInactive
	}
	return m.inner.create(automation)
}

func (m *MockAutomationRepository) Update(automation *domain.Automation) (*domain.Automation, error) {
	if err := automation.Validate(); err != nil {
		return nil, err
	}
	return m.inner.update(automation)
}

func (m *MockAutomationRepository) Delete(id string) error {
	return m.inner.delete(id)
}

// MockReportRepository is an in-memory domain.ReportRepository
type MockReportRepository struct {
	inner docMock[domain.Report]
}

// NewMockReportRepository creates an empty mock report repository
func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{inner: docMock[domain.Report]{
		records:  make(map[string]*domain.Report),
		prefix:   "report",
		ownerOf:  func(r *domain.Report) string { return r.OwnerID },
		idOf:     func(r *domain.Report) string { return r.ID },
		setID:    func(r *domain.Report, id string) { r.ID = id },
		ageOf:    func(r *domain.Report) time.Time { return r.CreatedAt },
		setAge:   func(r *domain.Report, t time.Time) { r.CreatedAt = t },
		notFound: domain.ErrReportNotFound,
	}}
}

func (m *MockReportRepository) GetByID(id string) (*domain.Report, error) { return m.inner.get(id) }

func (m *MockReportRepository) ListByOwner(ownerID string) ([]*domain.Report, error) {
	return m.inner.list(ownerID)
}

func (m *MockReportRepository) Create(report *domain.Report) (*domain.Report, error) {
	return m.inner.create(report)
}

func (m *MockReportRepository) Update(report *domain.Report) (*domain.Report, error) {
	return m.inner.update(report)
}

func (m *MockReportRepository) Delete(id string) error { return m.inner.delete(id) }

// MockSocialPostRepository is an in-memory domain.SocialPostRepository
type MockSocialPostRepository struct {
	inner docMock[domain.SocialPost]
}

// NewMockSocialPostRepository creates an empty mock social post repository
func NewMockSocialPostRepository() *MockSocialPostRepository {
	return &MockSocialPostRepository{inner: docMock[domain.SocialPost]{
		records:  make(map[string]*domain.SocialPost),
		prefix:   "post",
		ownerOf:  func(p *domain.SocialPost) string { return p.OwnerID },
		idOf:     func(p *domain.SocialPost) string { return p.ID },
		setID:    func(p *domain.SocialPost, id string) { p.ID = id },
		ageOf:    func(p *domain.SocialPost) time.Time { return p.CreatedAt },
		setAge:   func(p *domain.SocialPost, t time.Time) { p.CreatedAt = t },
		notFound: domain.ErrSocialPostNotFound,
	}}
}

func (m *MockSocialPostRepository) GetByID(id string) (*domain.SocialPost, error) {
	return m.inner.get(id)
}

func (m *MockSocialPostRepository) ListByOwner(ownerID string) ([]*domain.SocialPost, error) {
	return m.inner.list(ownerID)
}

func (m *MockSocialPostRepository) Create(post *domain.SocialPost) (*domain.SocialPost, error) {
	if post.Status == "" {
		post.Status = domain.SocialPostDraft
	}
	return m.inner.create(post)
}

func (m *MockSocialPostRepository) Update(post *domain.SocialPost) (*domain.SocialPost, error) {
	return m.inner.update(post)
}

func (m *MockSocialPostRepository) Delete(id string) error { return m.inner.delete(id) }

// MockSWOTRepository is an in-memory domain.SWOTRepository
type MockSWOTRepository struct {
	inner docMock[domain.SWOTAnalysis]
}

// NewMockSWOTRepository creates an empty mock SWOT repository
func NewMockSWOTRepository() *MockSWOTRepository {
	return &MockSWOTRepository{inner: docMock[domain.SWOTAnalysis]{
		records:  make(map[string]*domain.SWOTAnalysis),
		prefix:   "swot",
		ownerOf:  func(a *domain.SWOTAnalysis) string { return a.OwnerID },
		idOf:     func(a *domain.SWOTAnalysis) string { return a.ID },
		setID:    func(a *domain.SWOTAnalysis, id string) { a.ID = id },
		ageOf:    func(a *domain.SWOTAnalysis) time.Time { return a.CreatedAt },
		setAge:   func(a *domain.SWOTAnalysis, t time.Time) { a.CreatedAt = t },
		notFound: domain.ErrAnalysisNotFound,
	}}
}

func (m *MockSWOTRepository) GetByID(id string) (*domain.SWOTAnalysis, error) {
	return m.inner.get(id)
}

func (m *MockSWOTRepository) ListByOwner(ownerID string) ([]*domain.SWOTAnalysis, error) {
	return m.inner.list(ownerID)
}

func (m *MockSWOTRepository) Create(analysis *domain.SWOTAnalysis) (*domain.SWOTAnalysis, error) {
	return m.inner.create(analysis)
}

func (m *MockSWOTRepository) Delete(id string) error { return m.inner.delete(id) }

// MockCompetitorRepository is an in-memory domain.CompetitorRepository
type MockCompetitorRepository struct {
	inner docMock[domain.CompetitorAnalysis]
}

// NewMockCompetitorRepository creates an empty mock competitor repository
func NewMockCompetitorRepository() *MockCompetitorRepository {
	return &MockCompetitorRepository{inner: docMock[domain.CompetitorAnalysis]{
		records:  make(map[string]*domain.CompetitorAnalysis),
		prefix:   "competitors",
		ownerOf:  func(a *domain.CompetitorAnalysis) string { return a.OwnerID },
		idOf:     func(a *domain.CompetitorAnalysis) string { return a.ID },
		setID:    func(a *domain.CompetitorAnalysis, id string) { a.ID = id },
		ageOf:    func(a *domain.CompetitorAnalysis) time.Time { return a.CreatedAt },
		setAge:   func(a *domain.CompetitorAnalysis, t time.Time) { a.CreatedAt = t },
		notFound: domain.ErrAnalysisNotFound,
	}}
}

func (m *MockCompetitorRepository) GetByID(id string) (*domain.CompetitorAnalysis, error) {
	return m.inner.get(id)
}

func (m *MockCompetitorRepository) ListByOwner(ownerID string) ([]*domain.CompetitorAnalysis, error) {
	return m.inner.list(ownerID)
}

func (m *MockCompetitorRepository) Create(analysis *domain.CompetitorAnalysis) (*domain.CompetitorAnalysis, error) {
	return m.inner.create(analysis)
}

func (m *MockCompetitorRepository) Delete(id string) error { return m.inner.delete(id) }

// MockGrowthRepository is an in-memory domain.GrowthRepository
type MockGrowthRepository struct {
	inner docMock[domain.GrowthPlan]
}

// NewMockGrowthRepository creates an empty mock growth repository
func NewMockGrowthRepository() *MockGrowthRepository {
	return &MockGrowthRepository{inner: docMock[domain.GrowthPlan]{
		records:  make(map[string]*domain.GrowthPlan),
		prefix:   "plan",
		ownerOf:  func(p *domain.GrowthPlan) string { return p.OwnerID },
		idOf:     func(p *domain.GrowthPlan) string { return p.ID },
		setID:    func(p *domain.GrowthPlan, id string) { p.ID = id },
		ageOf:    func(p *domain.GrowthPlan) time.Time { return p.CreatedAt },
		setAge:   func(p *domain.GrowthPlan, t time.Time) { p.CreatedAt = t },
		notFound: domain.ErrGrowthPlanNotFound,
	}}
}

func (m *MockGrowthRepository) GetByID(id string) (*domain.GrowthPlan, error) {
	return m.inner.get(id)
}

func (m *MockGrowthRepository) ListByOwner(ownerID string) ([]*domain.GrowthPlan, error) {
	return m.inner.list(ownerID)
}

func (m *MockGrowthRepository) Create(plan *domain.GrowthPlan) (*domain.GrowthPlan, error) {
	return m.inner.create(plan)
}

func (m *MockGrowthRepository) Update(plan *domain.GrowthPlan) (*domain.GrowthPlan, error) {
	return m.inner.update(plan)
}

func (m *MockGrowthRepository) Delete(id string) error { return m.inner.delete(id) }
