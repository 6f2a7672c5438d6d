package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Yiling-J/theine-go"
)

// Resource identifies a cacheable server resource. Keys are grouped by
// resource so a mutation can drop every cached read of that resource.
type Resource string

const (
	ResourceCampaigns Resource = "campaigns"
	ResourceDonations Resource = "donations"
	ResourceDonors    Resource = "donors"
)

// Mutation identifies a write operation against a resource
type Mutation string

const (
	MutationCampaignCreated Mutation = "campaign.created"
	MutationCampaignUpdated Mutation = "campaign.updated"
	MutationCampaignDeleted Mutation = "campaign.deleted"
	MutationDonationCreated Mutation = "donation.created"
	MutationDonationDeleted Mutation = "donation.deleted"
	MutationDonorCreated    Mutation = "donor.created"
	MutationDonorUpdated    Mutation = "donor.updated"
	MutationDonorDeleted    Mutation = "donor.deleted"
	MutationBulkImported    Mutation = "donations.bulk-imported"
)

// Invalidations maps each mutation to every resource whose cached reads
// could show stale data afterwards. The relationship is kept as data so
// it can be inspected and tested on its own: e.g. deleting a donation
// invalidates donation reads (lists and the single entry) and campaign
// reads (raised totals change).
var Invalidations = map[Mutation][]Resource{
	MutationCampaignCreated: {ResourceCampaigns},
	MutationCampaignUpdated: {ResourceCampaigns},
	MutationCampaignDeleted: {ResourceCampaigns, ResourceDonations},
	MutationDonationCreated: {ResourceDonations, ResourceCampaigns},
	MutationDonationDeleted: {ResourceDonations, ResourceCampaigns},
	MutationDonorCreated:    {ResourceDonors},
	MutationDonorUpdated:    {ResourceDonors, ResourceDonations},
	MutationDonorDeleted:    {ResourceDonors, ResourceDonations},
	MutationBulkImported:    {ResourceDonations, ResourceCampaigns, ResourceDonors},
}

// DefaultTTL is the fixed staleness window applied to every entry
const DefaultTTL = 30 * time.Second

// Key builds a composite cache key from a resource and its filter
// parameters. Filters are sorted so equivalent queries share a key.
func Key(res Resource, filters map[string]string) string {
	if len(filters) == 0 {
		return string(res)
	}

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(string(res))
	b.WriteByte('?')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(filters[name])
	}
	return b.String()
}

// Store is a read-side query cache. Entries are never patched in place:
// mutations invalidate whole resources and the next read repopulates.
type Store struct {
	cache *theine.Cache[string, any]
	ttl   time.Duration

	mu   sync.Mutex
	keys map[Resource]map[string]struct{}
}

// NewStore creates a query cache holding up to capacity entries
func NewStore(capacity int64, ttl time.Duration) (*Store, error) {
	backing, err := theine.NewBuilder[string, any](capacity).Build()
	if err != nil {
		return nil, err
	}

	return &Store{
		cache: backing,
		ttl:   ttl,
		keys:  make(map[Resource]map[string]struct{}),
	}, nil
}

// Get returns the cached value for key, if present and fresh
func (s *Store) Get(key string) (any, bool) {
	return s.cache.Get(key)
}

// Set caches value under key and records the key against its resource
// so Invalidate can find it later
func (s *Store) Set(res Resource, key string, value any) {
	s.mu.Lock()
	if s.keys[res] == nil {
		s.keys[res] = make(map[string]struct{})
	}
	s.keys[res][key] = struct{}{}
	s.mu.Unlock()

	s.cache.SetWithTTL(key, value, 1, s.ttl)
}

// Invalidate drops every cached key of every resource the mutation
// affects, per the Invalidations table
func (s *Store) Invalidate(m Mutation) {
	resources, ok := Invalidations[m]
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, res := range resources {
		for key := range s.keys[res] {
			s.cache.Delete(key)
		}
		delete(s.keys, res)
	}
}
