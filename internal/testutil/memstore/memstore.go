// Package memstore implements the domain repositories in memory for tests. Ordering
// and not-found behaviour follow the Postgres repositories.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
	"github.com/sammy-mbugua/portfolio/internal/domain/education"
	"github.com/sammy-mbugua/portfolio/internal/domain/experience"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
	"github.com/sammy-mbugua/portfolio/internal/domain/social"
	"github.com/sammy-mbugua/portfolio/internal/domain/user"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

// Store holds every repository behind one lock.
type Store struct {
	mu sync.Mutex

	profiles     []*profile.Profile
	education    map[uuid.UUID]*education.Education
	experience   map[uuid.UUID]*experience.Experience
	achievements map[uuid.UUID]*experience.Achievement
	categories   map[uuid.UUID]*skill.Category
	skills       map[uuid.UUID]*skill.Skill
	projects     map[uuid.UUID]*project.Project
	links        map[uuid.UUID]*social.Link
	messages     map[uuid.UUID]*contact.Message
	users        map[string]*user.User
}

func New() *Store {
	return &Store{
		education:    map[uuid.UUID]*education.Education{},
		experience:   map[uuid.UUID]*experience.Experience{},
		achievements: map[uuid.UUID]*experience.Achievement{},
		categories:   map[uuid.UUID]*skill.Category{},
		skills:       map[uuid.UUID]*skill.Skill{},
		projects:     map[uuid.UUID]*project.Project{},
		links:        map[uuid.UUID]*social.Link{},
		messages:     map[uuid.UUID]*contact.Message{},
		users:        map[string]*user.User{},
	}
}

func (s *Store) Profiles() profile.Repository { return profileRepo{s} }
func (s *Store) Education() education.Repository { return educationRepo{s} }
func (s *Store) Experience() experience.Repository { return experienceRepo{s} }
func (s *Store) Skills() skill.Repository { return skillRepo{s} }
func (s *Store) Projects() project.Repository { return projectRepo{s} }
func (s *Store) Social() social.Repository { return socialRepo{s} }
func (s *Store) Contact() contact.Repository { return contactRepo{s} }
func (s *Store) Users() user.Repository { return userRepo{s} }

func limitSlice[T any](in []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(in) {
			return []T{}
		}
		in = in[offset:]
	}
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}

// profiles

type profileRepo struct{ s *Store }

func (r profileRepo) First(context.Context) (*profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.profiles) == 0 {
		return nil, nil
	}
	cp := *r.s.profiles[0]
	return &cp, nil
}

func (r profileRepo) FindByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("profile", id.String())
}

func (r profileRepo) Save(_ context.Context, p *profile.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&p.CreatedAt)
	stamp(&p.UpdatedAt)
	cp := *p
	r.s.profiles = append(r.s.profiles, &cp)
	return nil
}

func (r profileRepo) Update(_ context.Context, p *profile.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.profiles {
		if existing.ID == p.ID {
			p.UpdatedAt = time.Now().UTC()
			cp := *p
			r.s.profiles[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("profile", p.ID.String())
}

func (r profileRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.profiles {
		if p.ID == id {
			r.s.profiles = append(r.s.profiles[:i], r.s.profiles[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("profile", id.String())
}

func (r profileRepo) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.profiles = nil
	return nil
}

// education

type educationRepo struct{ s *Store }

func (r educationRepo) List(_ context.Context, limit int) ([]*education.Education, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*education.Education, 0, len(r.s.education))
	for _, e := range r.s.education {
		cp := *e
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EndDate.Equal(out[j].EndDate) {
			return out[i].EndDate.After(out[j].EndDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return limitSlice(out, limit, 0), nil
}

func (r educationRepo) FindByID(_ context.Context, id uuid.UUID) (*education.Education, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.education[id]
	if !ok {
		return nil, apperror.NewNotFound("education", id.String())
	}
	cp := *e
	return &cp, nil
}

func (r educationRepo) Save(_ context.Context, e *education.Education) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&e.CreatedAt)
	cp := *e
	r.s.education[e.ID] = &cp
	return nil
}

func (r educationRepo) Update(_ context.Context, e *education.Education) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.education[e.ID]; !ok {
		return apperror.NewNotFound("education", e.ID.String())
	}
	cp := *e
	r.s.education[e.ID] = &cp
	return nil
}

func (r educationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.education[id]; !ok {
		return apperror.NewNotFound("education", id.String())
	}
	delete(r.s.education, id)
	return nil
}

func (r educationRepo) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.education = map[uuid.UUID]*education.Education{}
	return nil
}

// experience

type experienceRepo struct{ s *Store }

func (r experienceRepo) withAchievements(e *experience.Experience) *experience.Experience {
	cp := *e
	cp.Achievements = []experience.Achievement{}
	for _, a := range r.s.achievements {
		if a.ExperienceID == e.ID {
			cp.Achievements = append(cp.Achievements, *a)
		}
	}
	sort.SliceStable(cp.Achievements, func(i, j int) bool {
		return cp.Achievements[i].Order < cp.Achievements[j].Order
	})
	return &cp
}

func (r experienceRepo) List(_ context.Context, limit int) ([]*experience.Experience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*experience.Experience, 0, len(r.s.experience))
	for _, e := range r.s.experience {
		out = append(out, r.withAchievements(e))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return limitSlice(out, limit, 0), nil
}

func (r experienceRepo) FindByID(_ context.Context, id uuid.UUID) (*experience.Experience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.experience[id]
	if !ok {
		return nil, apperror.NewNotFound("experience", id.String())
	}
	return r.withAchievements(e), nil
}

func (r experienceRepo) Save(_ context.Context, e *experience.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e.CurrentlyWorking && e.EndDate != nil {
		return apperror.NewInvalidInput("experience violates constraint experiences_current_no_end_date", nil)
	}
	stamp(&e.CreatedAt)
	cp := *e
	cp.Achievements = nil
	r.s.experience[e.ID] = &cp
	return nil
}

func (r experienceRepo) Update(_ context.Context, e *experience.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.experience[e.ID]; !ok {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	if e.CurrentlyWorking && e.EndDate != nil {
		return apperror.NewInvalidInput("experience violates constraint experiences_current_no_end_date", nil)
	}
	cp := *e
	cp.Achievements = nil
	r.s.experience[e.ID] = &cp
	return nil
}

func (r experienceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.experience[id]; !ok {
		return apperror.NewNotFound("experience", id.String())
	}
	delete(r.s.experience, id)
	for aid, a := range r.s.achievements {
		if a.ExperienceID == id {
			delete(r.s.achievements, aid)
		}
	}
	return nil
}

func (r experienceRepo) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.experience = map[uuid.UUID]*experience.Experience{}
	r.s.achievements = map[uuid.UUID]*experience.Achievement{}
	return nil
}

func (r experienceRepo) FindAchievementByID(_ context.Context, id uuid.UUID) (*experience.Achievement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.achievements[id]
	if !ok {
		return nil, apperror.NewNotFound("achievement", id.String())
	}
	cp := *a
	return &cp, nil
}

func (r experienceRepo) SaveAchievement(_ context.Context, a *experience.Achievement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.experience[a.ExperienceID]; !ok {
		return apperror.NewInvalidInput("achievement references a parent that does not exist", nil)
	}
	cp := *a
	r.s.achievements[a.ID] = &cp
	return nil
}

func (r experienceRepo) UpdateAchievement(_ context.Context, a *experience.Achievement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.achievements[a.ID]; !ok {
		return apperror.NewNotFound("achievement", a.ID.String())
	}
	cp := *a
	r.s.achievements[a.ID] = &cp
	return nil
}

func (r experienceRepo) DeleteAchievement(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.achievements[id]; !ok {
		return apperror.NewNotFound("achievement", id.String())
	}
	delete(r.s.achievements, id)
	return nil
}

// skills

type skillRepo struct{ s *Store }

func (r skillRepo) ListCategoriesWithSkills(context.Context) ([]*skill.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*skill.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		cp.Skills = []skill.Skill{}
		for _, sk := range r.s.skills {
			if sk.CategoryID == c.ID {
				cp.Skills = append(cp.Skills, *sk)
			}
		}
		skill.SortSkills(cp.Skills)
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r skillRepo) FindCategoryByID(_ context.Context, id uuid.UUID) (*skill.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, apperror.NewNotFound("skill category", id.String())
	}
	cp := *c
	return &cp, nil
}

func (r skillRepo) SaveCategory(_ context.Context, c *skill.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	cp.Skills = nil
	r.s.categories[c.ID] = &cp
	return nil
}

func (r skillRepo) UpdateCategory(_ context.Context, c *skill.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return apperror.NewNotFound("skill category", c.ID.String())
	}
	cp := *c
	cp.Skills = nil
	r.s.categories[c.ID] = &cp
	return nil
}

func (r skillRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return apperror.NewNotFound("skill category", id.String())
	}
	delete(r.s.categories, id)
	for sid, sk := range r.s.skills {
		if sk.CategoryID == id {
			delete(r.s.skills, sid)
		}
	}
	return nil
}

func (r skillRepo) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories = map[uuid.UUID]*skill.Category{}
	r.s.skills = map[uuid.UUID]*skill.Skill{}
	return nil
}

func (r skillRepo) FindSkillByID(_ context.Context, id uuid.UUID) (*skill.Skill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sk, ok := r.s.skills[id]
	if !ok {
		return nil, apperror.NewNotFound("skill", id.String())
	}
	cp := *sk
	return &cp, nil
}

func (r skillRepo) writeSkill(sk *skill.Skill) error {
	if _, ok := r.s.categories[sk.CategoryID]; !ok {
		return apperror.NewInvalidInput("skill references a parent that does not exist", nil)
	}
	if sk.Proficiency < skill.MinProficiency || sk.Proficiency > skill.MaxProficiency {
		return apperror.NewInvalidInput("skill violates constraint skills_proficiency_range", nil)
	}
	cp := *sk
	r.s.skills[sk.ID] = &cp
	return nil
}

func (r skillRepo) SaveSkill(_ context.Context, sk *skill.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.writeSkill(sk)
}

func (r skillRepo) UpdateSkill(_ context.Context, sk *skill.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.skills[sk.ID]; !ok {
		return apperror.NewNotFound("skill", sk.ID.String())
	}
	return r.writeSkill(sk)
}

func (r skillRepo) DeleteSkill(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.skills[id]; !ok {
		return apperror.NewNotFound("skill", id.String())
	}
	delete(r.s.skills, id)
	return nil
}

// projects

type projectRepo struct{ s *Store }

func (r projectRepo) Save(_ context.Context, p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&p.CreatedAt)
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}

func (r projectRepo) Update(_ context.Context, p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[p.ID]; !ok {
		return apperror.NewNotFound("project", p.ID.String())
	}
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}

func (r projectRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[id]; !ok {
		return apperror.NewNotFound("project", id.String())
	}
	delete(r.s.projects, id)
	return nil
}

func (r projectRepo) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects = map[uuid.UUID]*project.Project{}
	return nil
}

func (r projectRepo) FindByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, apperror.NewNotFound("project", id.String())
	}
	cp := *p
	return &cp, nil
}

func (r projectRepo) filtered(f project.Filter) []*project.Project {
	out := make([]*project.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		if f.ExcludeID != nil && p.ID == *f.ExcludeID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (r projectRepo) List(_ context.Context, f project.Filter, limit, offset int) ([]*project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return limitSlice(r.filtered(f), limit, offset), nil
}

func (r projectRepo) Count(_ context.Context, f project.Filter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.filtered(f)), nil
}

// social links

type socialRepo struct{ s *Store }

func (r socialRepo) List(context.Context) ([]*social.Link, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*social.Link, 0, len(r.s.links))
	for _, l := range r.s.links {
		cp := *l
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Platform < out[j].Platform
	})
	return out, nil
}

func (r socialRepo) FindByID(_ context.Context, id uuid.UUID) (*social.Link, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.links[id]
	if !ok {
		return nil, apperror.NewNotFound("social link", id.String())
	}
	cp := *l
	return &cp, nil
}

func (r socialRepo) Save(_ context.Context, l *social.Link) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *l
	r.s.links[l.ID] = &cp
	return nil
}

func (r socialRepo) Update(_ context.Context, l *social.Link) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.links[l.ID]; !ok {
		return apperror.NewNotFound("social link", l.ID.String())
	}
	cp := *l
	r.s.links[l.ID] = &cp
	return nil
}

func (r socialRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.links[id]; !ok {
		return apperror.NewNotFound("social link", id.String())
	}
	delete(r.s.links, id)
	return nil
}

func (r socialRepo) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.links = map[uuid.UUID]*social.Link{}
	return nil
}

// contact messages

type contactRepo struct{ s *Store }

func (r contactRepo) Save(_ context.Context, m *contact.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&m.CreatedAt)
	cp := *m
	r.s.messages[m.ID] = &cp
	return nil
}

func (r contactRepo) FindByID(_ context.Context, id uuid.UUID) (*contact.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.messages[id]
	if !ok {
		return nil, apperror.NewNotFound("contact message", id.String())
	}
	cp := *m
	return &cp, nil
}

func (r contactRepo) filtered(f contact.ListFilter) []*contact.Message {
	out := make([]*contact.Message, 0, len(r.s.messages))
	for _, m := range r.s.messages {
		if f.Read != nil && m.Read != *f.Read {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (r contactRepo) List(_ context.Context, f contact.ListFilter, limit, offset int) ([]*contact.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return limitSlice(r.filtered(f), limit, offset), nil
}

func (r contactRepo) Count(_ context.Context, f contact.ListFilter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.filtered(f)), nil
}

func (r contactRepo) SetRead(_ context.Context, ids []uuid.UUID, read bool) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, id := range ids {
		if m, ok := r.s.messages[id]; ok {
			m.Read = read
			n++
		}
	}
	return n, nil
}

func (r contactRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.messages[id]; !ok {
		return apperror.NewNotFound("contact message", id.String())
	}
	delete(r.s.messages, id)
	return nil
}

// users

type userRepo struct{ s *Store }

func (r userRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	cp := *u
	return &cp, nil
}

func (r userRepo) Upsert(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.users[u.Email]; ok {
		u.ID = existing.ID
	}
	cp := *u
	r.s.users[u.Email] = &cp
	return nil
}
