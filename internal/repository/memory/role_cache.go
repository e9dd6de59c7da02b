package memory

import (
	"time"

	"pet-house-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// RoleCache keeps the stored role and status of recently seen callers so the auth gate
// does not hit the users table on every request.
type RoleCache struct {
	cache *cache.Cache
}

type CachedRole struct {
	Role   entity.UserRole
	Status entity.UserStatus
}

func NewRoleCache(ttl time.Duration) *RoleCache {
	return &RoleCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *RoleCache) Save(email string, role CachedRole) {
	r.cache.Set(email, role, cache.DefaultExpiration)
}

func (r *RoleCache) Get(email string) (CachedRole, bool) {
	if x, found := r.cache.Get(email); found {
		return x.(CachedRole), true
	}
	return CachedRole{}, false
}

func (r *RoleCache) Invalidate(email string) {
	r.cache.Delete(email)
}
