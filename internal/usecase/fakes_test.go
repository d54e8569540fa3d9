package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/logger"
)

var errStoreDown = errors.New("store unavailable")

var nopLogger = logger.NewNopLogger()

// ---- ids / config ----

type seqUUID struct{ n int }

func (g *seqUUID) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string                  { return "http://localhost:8080" }
func (fakeConfig) GetRefreshTokenExpiry() time.Duration   { return time.Hour }
func (fakeConfig) GetAvailabilityCacheTTL() time.Duration { return time.Minute }
func (fakeConfig) GetContentCacheTTL() time.Duration      { return time.Minute }
func (fakeConfig) GetNotificationTimeout() time.Duration  { return time.Second }
func (fakeConfig) GetTranslationSourceLang() string       { return "en" }
func (fakeConfig) GetTranslationTargetLang() string       { return "ar" }

// ---- users ----

type fakeUserRepo struct {
	users      map[string]*entity.User
	ShouldFail bool
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	if r.ShouldFail {
		return errStoreDown
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperror.Conflict("duplicate email")
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if r.ShouldFail {
		return nil, errStoreDown
	}
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.ShouldFail {
		return nil, errStoreDown
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (r *fakeUserRepo) GetFirstAdmin(ctx context.Context) (*entity.User, error) {
	var first *entity.User
	for _, u := range r.users {
		if u.Role == entity.UserRoleAdmin && (first == nil || u.CreatedAt.Before(first.CreatedAt)) {
			first = u
		}
	}
	if first == nil {
		return nil, apperror.NotFound("no admin")
	}
	cp := *first
	return &cp, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, apperror.NotFound("user not found")
	}
	cp := *user
	r.users[user.ID] = &cp
	return user, nil
}

func (r *fakeUserRepo) SetAssessment(ctx context.Context, userID string, snapshot *entity.Assessment) error {
	u, ok := r.users[userID]
	if !ok {
		return apperror.NotFound("user not found")
	}
	u.Assessment = snapshot
	u.HasCompletedAssessment = true
	return nil
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, filter entity.UserFilter) ([]entity.User, int64, error) {
	var out []entity.User
	for _, u := range r.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) CountUsers(ctx context.Context, role *entity.UserRole) (int64, error) {
	var n int64
	for _, u := range r.users {
		if role == nil || u.Role == *role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountCompletedAssessments(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.HasCompletedAssessment {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return apperror.NotFound("user not found")
	}
	delete(r.users, id)
	return nil
}

// ---- tokens ----

type fakeTokenRepo struct {
	tokens map[string]*entity.Token
}

var _ contract.ITokenRepository = (*fakeTokenRepo)(nil)

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*entity.Token{}}
}

func (r *fakeTokenRepo) CreateToken(ctx context.Context, token *entity.Token) error {
	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

func (r *fakeTokenRepo) GetTokenByID(ctx context.Context, id string) (*entity.Token, error) {
	t, ok := r.tokens[id]
	if !ok {
		return nil, apperror.NotFound("token not found")
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTokenRepo) UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error {
	t, ok := r.tokens[tokenID]
	if !ok {
		return apperror.NotFound("token not found")
	}
	t.TokenHash = tokenHash
	t.ExpiresAt = expiry
	return nil
}

func (r *fakeTokenRepo) RevokeToken(ctx context.Context, id string) error {
	t, ok := r.tokens[id]
	if !ok {
		return apperror.NotFound("token not found")
	}
	t.Revoke = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	for _, t := range r.tokens {
		if t.UserID == userID && t.TokenType == tokenType {
			t.Revoke = true
		}
	}
	return nil
}

// ---- assessments ----

type fakeAssessmentRepo struct {
	records []entity.Assessment
}

var _ contract.IAssessmentRepository = (*fakeAssessmentRepo)(nil)

func (r *fakeAssessmentRepo) Create(ctx context.Context, a *entity.Assessment) error {
	r.records = append(r.records, *a)
	return nil
}

func (r *fakeAssessmentRepo) GetFirstByUserID(ctx context.Context, userID string) (*entity.Assessment, error) {
	for _, a := range r.records {
		if a.UserID == userID {
			cp := a
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("assessment not found")
}

func (r *fakeAssessmentRepo) ListByUserID(ctx context.Context, userID string) ([]entity.Assessment, error) {
	var out []entity.Assessment
	for _, a := range r.records {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ---- consultations ----

type fakeConsultationRepo struct {
	requests map[string]*entity.ConsultationRequest
}

var _ contract.IConsultationRepository = (*fakeConsultationRepo)(nil)

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{requests: map[string]*entity.ConsultationRequest{}}
}

func (r *fakeConsultationRepo) Create(ctx context.Context, req *entity.ConsultationRequest) error {
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeConsultationRepo) GetByID(ctx context.Context, id string) (*entity.ConsultationRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, apperror.NotFound("consultation request not found")
	}
	cp := *req
	return &cp, nil
}

func (r *fakeConsultationRepo) HasPending(ctx context.Context, userID string) (bool, error) {
	for _, req := range r.requests {
		if req.UserID == userID && req.Status == entity.ConsultationStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConsultationRepo) list(keep func(*entity.ConsultationRequest) bool) []entity.ConsultationRequest {
	var out []entity.ConsultationRequest
	for _, req := range r.requests {
		if keep(req) {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeConsultationRepo) ListByStatus(ctx context.Context, status entity.ConsultationStatus) ([]entity.ConsultationRequest, error) {
	return r.list(func(req *entity.ConsultationRequest) bool { return req.Status == status }), nil
}

func (r *fakeConsultationRepo) ListByUserID(ctx context.Context, userID string) ([]entity.ConsultationRequest, error) {
	return r.list(func(req *entity.ConsultationRequest) bool { return req.UserID == userID }), nil
}

func (r *fakeConsultationRepo) Decide(ctx context.Context, id string, d entity.ConsultationDecision) (*entity.ConsultationRequest, error) {
	req, ok := r.requests[id]
	if !ok || req.Status != entity.ConsultationStatusPending {
		return nil, apperror.Conflict("request is no longer pending")
	}
	req.Status = d.Status
	req.AssignedSpecialistID = d.AssignedSpecialistID
	req.AssignedSpecialistName = d.AssignedSpecialistName
	req.RejectionReason = d.RejectionReason
	req.DecidedBy = d.DecidedBy
	at := d.DecidedAt
	req.DecidedAt = &at
	cp := *req
	return &cp, nil
}

func (r *fakeConsultationRepo) CountByStatus(ctx context.Context, status entity.ConsultationStatus) (int64, error) {
	return int64(len(r.list(func(req *entity.ConsultationRequest) bool { return req.Status == status }))), nil
}

// ---- appointments ----

type fakeAppointmentRepo struct {
	appointments map[string]*entity.Appointment
	holdingCalls int
}

var _ contract.IAppointmentRepository = (*fakeAppointmentRepo)(nil)

func newFakeAppointmentRepo(appts ...*entity.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{appointments: map[string]*entity.Appointment{}}
	for _, a := range appts {
		r.appointments[a.ID] = a
	}
	return r
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	cp := *a
	r.appointments[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, apperror.NotFound("appointment not found")
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) FindHoldingSlots(ctx context.Context, specialistID string, from, to time.Time) ([]entity.Appointment, error) {
	r.holdingCalls++
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.SpecialistID == specialistID && a.Status.HoldsSlot() && !a.Date.Before(from) && a.Date.Before(to) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, f entity.AppointmentFilter) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if f.UserID != "" && a.UserID != f.UserID {
			continue
		}
		if f.SpecialistID != "" && a.SpecialistID != f.SpecialistID {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, from entity.AppointmentStatus, c entity.AppointmentChanges) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok || a.Status != from {
		return nil, apperror.Conflict("status changed")
	}
	a.Status = c.Status
	if c.AdminNotes != nil {
		a.AdminNotes = *c.AdminNotes
	}
	if c.MeetingLink != nil {
		a.MeetingLink = *c.MeetingLink
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.appointments[id]; !ok {
		return apperror.NotFound("appointment not found")
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) CountByStatus(ctx context.Context) (map[entity.AppointmentStatus]int64, error) {
	out := map[entity.AppointmentStatus]int64{}
	for _, a := range r.appointments {
		out[a.Status]++
	}
	return out, nil
}

// ---- messages ----

type fakeMessageRepo struct {
	messages []*entity.Message
}

var _ contract.IMessageRepository = (*fakeMessageRepo)(nil)

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) collect(keep func(*entity.Message) bool, newestFirst bool) []entity.Message {
	var out []entity.Message
	for _, m := range r.messages {
		if keep(m) {
			out = append(out, *m)
		}
	}
	if newestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func (r *fakeMessageRepo) ListByConversation(ctx context.Context, conversationID string) ([]entity.Message, error) {
	return r.collect(func(m *entity.Message) bool { return m.ConversationID == conversationID }, false), nil
}

func (r *fakeMessageRepo) ListByRecipientRole(ctx context.Context, role entity.UserRole) ([]entity.Message, error) {
	return r.collect(func(m *entity.Message) bool { return m.RecipientRole == role }, true), nil
}

func (r *fakeMessageRepo) ListByParticipant(ctx context.Context, userID string) ([]entity.Message, error) {
	return r.collect(func(m *entity.Message) bool { return m.SenderID == userID || m.RecipientID == userID }, true), nil
}

func (r *fakeMessageRepo) MarkConversationRead(ctx context.Context, conversationID, recipientID string, at time.Time) (int64, error) {
	var n int64
	for _, m := range r.messages {
		if m.ConversationID == conversationID && m.RecipientID == recipientID && !m.IsRead {
			m.IsRead = true
			readAt := at
			m.ReadAt = &readAt
			n++
		}
	}
	return n, nil
}

func (r *fakeMessageRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	return int64(len(r.collect(func(m *entity.Message) bool { return m.RecipientID == recipientID && !m.IsRead }, false))), nil
}

func (r *fakeMessageRepo) CountUnreadByRecipientRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return int64(len(r.collect(func(m *entity.Message) bool { return m.RecipientRole == role && !m.IsRead }, false))), nil
}

// ---- content ----

type fakeContentRepo struct {
	items map[string]*entity.Content
}

var _ contract.IContentRepository = (*fakeContentRepo)(nil)

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: map[string]*entity.Content{}}
}

func (r *fakeContentRepo) Create(ctx context.Context, c *entity.Content) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeContentRepo) GetByID(ctx context.Context, id string) (*entity.Content, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, apperror.NotFound("content not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContentRepo) GetBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	for _, c := range r.items {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("content not found")
}

func (r *fakeContentRepo) List(ctx context.Context, f entity.ContentFilter) ([]entity.Content, int64, error) {
	var out []entity.Content
	for _, c := range r.items {
		if f.PublishedOnly && !c.IsPublished {
			continue
		}
		if f.Type != nil && c.Type != *f.Type {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeContentRepo) Update(ctx context.Context, c *entity.Content) error {
	if _, ok := r.items[c.ID]; !ok {
		return apperror.NotFound("content not found")
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeContentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return apperror.NotFound("content not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeContentRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, c := range r.items {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// ---- categories ----

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

var _ contract.ICategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, apperror.NotFound("category not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	if _, ok := r.items[c.ID]; !ok {
		return apperror.NotFound("category not found")
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return apperror.NotFound("category not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCategoryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, c := range r.items {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// ---- branding ----

type fakeBrandingRepo struct {
	branding *entity.Branding
	upserts  int
}

var _ contract.IBrandingRepository = (*fakeBrandingRepo)(nil)

func (r *fakeBrandingRepo) Get(ctx context.Context) (*entity.Branding, error) {
	if r.branding == nil {
		return nil, apperror.NotFound("branding not found")
	}
	cp := *r.branding
	return &cp, nil
}

func (r *fakeBrandingRepo) Upsert(ctx context.Context, b *entity.Branding) error {
	cp := *b
	r.branding = &cp
	r.upserts++
	return nil
}

// ---- media ----

type fakeMediaRepo struct {
	items      map[string]*entity.Media
	ShouldFail bool
}

var _ contract.IMediaRepository = (*fakeMediaRepo)(nil)

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{items: map[string]*entity.Media{}}
}

func (r *fakeMediaRepo) CreateMedia(ctx context.Context, m *entity.Media) error {
	if r.ShouldFail {
		return errStoreDown
	}
	cp := *m
	r.items[m.PublicID] = &cp
	return nil
}

func (r *fakeMediaRepo) GetMediaByPublicID(ctx context.Context, publicID string) (*entity.Media, error) {
	m, ok := r.items[publicID]
	if !ok || m.IsDeleted {
		return nil, apperror.NotFound("media not found")
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMediaRepo) DeleteMedia(ctx context.Context, publicID string) error {
	m, ok := r.items[publicID]
	if !ok || m.IsDeleted {
		return apperror.NotFound("media not found")
	}
	m.IsDeleted = true
	return nil
}

type fakeMediaStorage struct {
	blobs map[string][]byte
	n     int
}

var _ contract.IMediaStorage = (*fakeMediaStorage)(nil)

func newFakeMediaStorage() *fakeMediaStorage {
	return &fakeMediaStorage{blobs: map[string][]byte{}}
}

func (s *fakeMediaStorage) Upload(ctx context.Context, fileName, mimeType string, r io.Reader) (*entity.UploadedMedia, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.n++
	id := fmt.Sprintf("blob-%d", s.n)
	s.blobs[id] = data
	return &entity.UploadedMedia{URL: "http://localhost:8080/api/v1/media/" + id, PublicID: id}, nil
}

func (s *fakeMediaStorage) Open(ctx context.Context, publicID string) (io.ReadCloser, error) {
	data, ok := s.blobs[publicID]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeMediaStorage) Delete(ctx context.Context, publicID string) error {
	delete(s.blobs, publicID)
	return nil
}

// ---- services ----

type fakeCache struct {
	data map[string][]byte
}

var _ contract.ICache = (*fakeCache)(nil)

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *fakeCache) DeletePrefix(ctx context.Context, prefix string) error {
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type recordingNotifier struct {
	mu         sync.Mutex
	sent       []entity.Notification
	ShouldFail bool
}

var _ contract.INotifier = (*recordingNotifier)(nil)

func (n *recordingNotifier) Notify(ctx context.Context, notification entity.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	if n.ShouldFail {
		return errors.New("smtp down")
	}
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func (n *recordingNotifier) recipients() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.RecipientEmail)
	}
	sort.Strings(out)
	return out
}

type fakeTranslator struct {
	ShouldFail bool
	calls      int
}

func (t *fakeTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	t.calls++
	if t.ShouldFail {
		return "", errors.New("translation service down")
	}
	return "[" + target + "] " + text, nil
}

type stripSanitizer struct{}

func (stripSanitizer) Sanitize(html string) string {
	return strings.ReplaceAll(html, "<script>", "")
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) ComparePasswordHash(password, hashed string) error {
	if hashed != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}
func (fakeHasher) HashString(s string) string    { return "sha:" + s }
func (fakeHasher) CheckHash(s, hash string) bool { return hash == "sha:"+s }

// fakeJWT encodes claims in plain text.
type fakeJWT struct{ n int }

func (j *fakeJWT) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return "access|" + userID + "|" + string(role), nil
}

func (j *fakeJWT) GenerateRefreshToken(userID, tokenID string) (string, error) {
	j.n++
	return fmt.Sprintf("refresh|%s|%s|%d", userID, tokenID, j.n), nil
}

func (j *fakeJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[0] != "access" {
		return nil, errors.New("bad token")
	}
	return &entity.Claims{UserID: parts[1], Role: entity.UserRole(parts[2]), TokenType: entity.TokenTypeAccess}, nil
}

func (j *fakeJWT) ParseRefreshToken(token string) (*entity.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 4 || parts[0] != "refresh" {
		return nil, errors.New("bad token")
	}
	return &entity.Claims{UserID: parts[1], TokenID: parts[2], TokenType: entity.TokenTypeRefresh}, nil
}

// ---- fixtures ----

func adminUser(id, name string) *entity.User {
	return &entity.User{ID: id, Name: name, Email: id + "@coach.example", Role: entity.UserRoleAdmin, IsActive: true, CreatedAt: time.Now()}
}

func memberUser(id, name string) *entity.User {
	return &entity.User{ID: id, Name: name, Email: id + "@mail.example", Role: entity.UserRoleUser, IsActive: true, CreatedAt: time.Now()}
}

func actorOf(u *entity.User) entity.Actor {
	return entity.Actor{UserID: u.ID, Role: u.Role, Email: u.Email, Name: u.Name}
}
