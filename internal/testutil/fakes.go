package testutil

import (
	"context"
	"sort"
	"sync"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is an in-memory stand-in for the MongoDB collections. Setting Err
// makes every repository call fail with it. Calls counts repository calls by
// "<collection>.<method>".
type Store struct {
	mu sync.Mutex

	Users    []*entity.User
	Menu     []*entity.MenuItem
	Reviews  []*entity.Review
	Cart     []*entity.CartItem
	Payments []*entity.Payment

	Err   error
	Calls map[string]int
}

func NewStore() *Store {
	return &Store{Calls: make(map[string]int)}
}

// Repository returns a repository set backed by s.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:    &userRepo{s},
		Menu:    &menuRepo{s},
		Review:  &reviewRepo{s},
		Cart:    &cartRepo{s},
		Payment: &paymentRepo{s},
	}
}

// CallCount is safe to use while background work is running.
func (s *Store) CallCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls[name]
}

func (s *Store) begin(name string) (func(), error) {
	s.mu.Lock()
	s.Calls[name]++
	if s.Err != nil {
		s.mu.Unlock()
		return nil, s.Err
	}
	return s.mu.Unlock, nil
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	done, err := r.s.begin("users.Create")
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer done()

	user.ID = primitive.NewObjectID()
	r.s.Users = append(r.s.Users, user)
	return user.ID, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	done, err := r.s.begin("users.FindByEmail")
	if err != nil {
		return nil, err
	}
	defer done()

	for _, u := range r.s.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	done, err := r.s.begin("users.FindAll")
	if err != nil {
		return nil, err
	}
	defer done()

	return append(make([]*entity.User, 0, len(r.s.Users)), r.s.Users...), nil
}

func (r *userRepo) SetRole(ctx context.Context, id primitive.ObjectID, role entity.UserRole) (*repository.UpdateResult, error) {
	done, err := r.s.begin("users.SetRole")
	if err != nil {
		return nil, err
	}
	defer done()

	result := &repository.UpdateResult{}
	for _, u := range r.s.Users {
		if u.ID == id {
			result.MatchedCount = 1
			if u.Role != role {
				u.Role = role
				result.ModifiedCount = 1
			}
		}
	}
	return result, nil
}

func (r *userRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	done, err := r.s.begin("users.Delete")
	if err != nil {
		return 0, err
	}
	defer done()

	var n int64
	r.s.Users, n = removeByID(r.s.Users, func(u *entity.User) bool { return u.ID == id })
	return n, nil
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	done, err := r.s.begin("users.Count")
	if err != nil {
		return 0, err
	}
	defer done()

	return int64(len(r.s.Users)), nil
}

type menuRepo struct{ s *Store }

func (r *menuRepo) Create(ctx context.Context, item *entity.MenuItem) (primitive.ObjectID, error) {
	done, err := r.s.begin("menu.Create")
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer done()

	item.ID = primitive.NewObjectID()
	r.s.Menu = append(r.s.Menu, item)
	return item.ID, nil
}

func (r *menuRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	done, err := r.s.begin("menu.FindByID")
	if err != nil {
		return nil, err
	}
	defer done()

	for _, m := range r.s.Menu {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *menuRepo) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	done, err := r.s.begin("menu.FindAll")
	if err != nil {
		return nil, err
	}
	defer done()

	return append(make([]*entity.MenuItem, 0, len(r.s.Menu)), r.s.Menu...), nil
}

func (r *menuRepo) Update(ctx context.Context, id primitive.ObjectID, update repository.MenuUpdate) (*repository.UpdateResult, error) {
	done, err := r.s.begin("menu.Update")
	if err != nil {
		return nil, err
	}
	defer done()

	result := &repository.UpdateResult{}
	for _, m := range r.s.Menu {
		if m.ID == id {
			result.MatchedCount = 1
			result.ModifiedCount = 1
			if update.Name != nil {
				m.Name = *update.Name
			}
			if update.Category != nil {
				m.Category = *update.Category
			}
			if update.Price != nil {
				m.Price = *update.Price
			}
			if update.Recipe != nil {
				m.Recipe = *update.Recipe
			}
		}
	}
	return result, nil
}

func (r *menuRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	done, err := r.s.begin("menu.Delete")
	if err != nil {
		return 0, err
	}
	defer done()

	var n int64
	r.s.Menu, n = removeByID(r.s.Menu, func(m *entity.MenuItem) bool { return m.ID == id })
	return n, nil
}

func (r *menuRepo) Count(ctx context.Context) (int64, error) {
	done, err := r.s.begin("menu.Count")
	if err != nil {
		return 0, err
	}
	defer done()

	return int64(len(r.s.Menu)), nil
}

type reviewRepo struct{ s *Store }

func (r *reviewRepo) FindAll(ctx context.Context) ([]*entity.Review, error) {
	done, err := r.s.begin("reviews.FindAll")
	if err != nil {
		return nil, err
	}
	defer done()

	return append(make([]*entity.Review, 0, len(r.s.Reviews)), r.s.Reviews...), nil
}

type cartRepo struct{ s *Store }

func (r *cartRepo) Create(ctx context.Context, item *entity.CartItem) (primitive.ObjectID, error) {
	done, err := r.s.begin("cart.Create")
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer done()

	item.ID = primitive.NewObjectID()
	r.s.Cart = append(r.s.Cart, item)
	return item.ID, nil
}

func (r *cartRepo) FindByEmail(ctx context.Context, email string) ([]*entity.CartItem, error) {
	done, err := r.s.begin("cart.FindByEmail")
	if err != nil {
		return nil, err
	}
	defer done()

	items := make([]*entity.CartItem, 0)
	for _, c := range r.s.Cart {
		if c.Email == email {
			items = append(items, c)
		}
	}
	return items, nil
}

func (r *cartRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	done, err := r.s.begin("cart.Delete")
	if err != nil {
		return 0, err
	}
	defer done()

	var n int64
	r.s.Cart, n = removeByID(r.s.Cart, func(c *entity.CartItem) bool { return c.ID == id })
	return n, nil
}

func (r *cartRepo) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	done, err := r.s.begin("cart.DeleteMany")
	if err != nil {
		return 0, err
	}
	defer done()

	set := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	var n int64
	r.s.Cart, n = removeByID(r.s.Cart, func(c *entity.CartItem) bool { return set[c.ID] })
	return n, nil
}

type paymentRepo struct{ s *Store }

func (r *paymentRepo) Create(ctx context.Context, payment *entity.Payment) (primitive.ObjectID, error) {
	done, err := r.s.begin("payments.Create")
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer done()

	payment.ID = primitive.NewObjectID()
	r.s.Payments = append(r.s.Payments, payment)
	return payment.ID, nil
}

func (r *paymentRepo) FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	done, err := r.s.begin("payments.FindByEmail")
	if err != nil {
		return nil, err
	}
	defer done()

	payments := make([]*entity.Payment, 0)
	for i := len(r.s.Payments) - 1; i >= 0; i-- {
		if r.s.Payments[i].Email == email {
			payments = append(payments, r.s.Payments[i])
		}
	}
	return payments, nil
}

func (r *paymentRepo) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	done, err := r.s.begin("payments.FindAll")
	if err != nil {
		return nil, err
	}
	defer done()

	payments := make([]*entity.Payment, 0, len(r.s.Payments))
	for i := len(r.s.Payments) - 1; i >= 0; i-- {
		payments = append(payments, r.s.Payments[i])
	}
	return payments, nil
}

func (r *paymentRepo) Count(ctx context.Context) (int64, error) {
	done, err := r.s.begin("payments.Count")
	if err != nil {
		return 0, err
	}
	defer done()

	return int64(len(r.s.Payments)), nil
}

func (r *paymentRepo) TotalRevenue(ctx context.Context) (float64, error) {
	done, err := r.s.begin("payments.TotalRevenue")
	if err != nil {
		return 0, err
	}
	defer done()

	var total float64
	for _, p := range r.s.Payments {
		total += p.Price
	}
	return total, nil
}

// CategoryStats joins menuItemIds against Menu the way the aggregation does.
func (r *paymentRepo) CategoryStats(ctx context.Context) ([]*entity.CategoryStats, error) {
	done, err := r.s.begin("payments.CategoryStats")
	if err != nil {
		return nil, err
	}
	defer done()

	byCategory := make(map[string]*entity.CategoryStats)
	for _, p := range r.s.Payments {
		for _, id := range p.MenuItemIDs {
			for _, m := range r.s.Menu {
				if m.ID != id {
					continue
				}
				row, ok := byCategory[m.Category]
				if !ok {
					row = &entity.CategoryStats{Category: m.Category}
					byCategory[m.Category] = row
				}
				row.Quantity++
				row.Revenue += m.Price
			}
		}
	}

	stats := make([]*entity.CategoryStats, 0, len(byCategory))
	for _, row := range byCategory {
		stats = append(stats, row)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats, nil
}

func removeByID[T any](items []*T, match func(*T) bool) ([]*T, int64) {
	kept := items[:0]
	var removed int64
	for _, item := range items {
		if match(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}
