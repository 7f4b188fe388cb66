package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"wayfarer/internal/llm"
	"wayfarer/internal/models/db_models"
)

// fakePlanRepo keeps plans in memory.
type fakePlanRepo struct {
	mu      sync.Mutex
	plans   map[uuid.UUID]*db_models.TravelPlan
	created int
	err     error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[uuid.UUID]*db_models.TravelPlan{}}
}

func (f *fakePlanRepo) Create(_ context.Context, plan *db_models.TravelPlan) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.created++
	plan.CreatedAt = int64(f.created)
	stored := *plan
	f.plans[plan.ID] = &stored
	return nil
}

func (f *fakePlanRepo) GetForOwner(_ context.Context, ownerID, planID uuid.UUID) (*db_models.TravelPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	plan, ok := f.plans[planID]
	if !ok || plan.OwnerID != ownerID {
		return nil, nil
	}
	out := *plan
	return &out, nil
}

func (f *fakePlanRepo) ListForOwner(_ context.Context, ownerID uuid.UUID) ([]db_models.TravelPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.TravelPlan
	for _, plan := range f.plans {
		if plan.OwnerID == ownerID {
			out = append(out, *plan)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (f *fakePlanRepo) Update(_ context.Context, plan *db_models.TravelPlan, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := f.plans[plan.ID]
	for column, value := range fields {
		switch column {
		case "title":
			stored.Title = value.(string)
		case "notes":
			v := value.(string)
			stored.Notes = &v
		case "travelers":
			v := value.(int)
			stored.Travelers = &v
		}
	}
	return nil
}

func (f *fakePlanRepo) Delete(_ context.Context, plan *db_models.TravelPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.plans, plan.ID)
	return nil
}

// fakeGenerator returns a canned itinerary or error and records what it was asked.
type fakeGenerator struct {
	doc       llm.Itinerary
	err       error
	calls     int
	overrides llm.Overrides
}

func (f *fakeGenerator) Generate(_ context.Context, _ llm.PlanIntent, overrides llm.Overrides) (llm.Itinerary, error) {
	f.calls++
	f.overrides = overrides
	return f.doc, f.err
}

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*db_models.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[uuid.UUID]*db_models.Expense{}}
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *db_models.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	stored := *expense
	f.expenses[expense.ID] = &stored
	return nil
}

func (f *fakeExpenseRepo) ListForPlan(_ context.Context, planID uuid.UUID) ([]db_models.Expense, error) {
	var out []db_models.Expense
	for _, e := range f.expenses {
		if e.PlanID == planID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) GetForPlan(_ context.Context, planID, expenseID uuid.UUID) (*db_models.Expense, error) {
	e, ok := f.expenses[expenseID]
	if !ok || e.PlanID != planID {
		return nil, nil
	}
	out := *e
	return &out, nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, expense *db_models.Expense) error {
	delete(f.expenses, expense.ID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*db_models.User{}}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) FindById(_ context.Context, id string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}
