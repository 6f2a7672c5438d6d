package cache

import (
	"testing"
	"time"
)

func TestKeyCanonicalOrder(t *testing.T) {
	a := Key(ResourceDonations, map[string]string{"campaignId": "3", "donorId": "7"})
	b := Key(ResourceDonations, map[string]string{"donorId": "7", "campaignId": "3"})
	if a != b {
		t.Fatalf("equivalent filters produced different keys: %q vs %q", a, b)
	}
	if a != "donations?campaignId=3&donorId=7" {
		t.Fatalf("unexpected key: %q", a)
	}
}

func TestKeyWithoutFilters(t *testing.T) {
	if got := Key(ResourceCampaigns, nil); got != "campaigns" {
		t.Fatalf("expected bare resource key, got %q", got)
	}
}

func TestSetAndGet(t *testing.T) {
	store, err := NewStore(100, time.Minute)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}

	key := Key(ResourceCampaigns, map[string]string{"status": "ACTIVE"})
	store.Set(ResourceCampaigns, key, "payload")

	got, ok := store.Get(key)
	if !ok {
		t.Fatal("expected cached entry")
	}
	if got != "payload" {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestDonationDeleteInvalidatesCampaignReads(t *testing.T) {
	store, err := NewStore(100, time.Minute)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}

	campaignKey := Key(ResourceCampaigns, nil)
	donationKey := Key(ResourceDonations, map[string]string{"campaignId": "1"})
	donorKey := Key(ResourceDonors, nil)
	store.Set(ResourceCampaigns, campaignKey, "campaigns")
	store.Set(ResourceDonations, donationKey, "donations")
	store.Set(ResourceDonors, donorKey, "donors")

	store.Invalidate(MutationDonationDeleted)

	if _, ok := store.Get(donationKey); ok {
		t.Fatal("donation reads should have been dropped")
	}
	if _, ok := store.Get(campaignKey); ok {
		t.Fatal("campaign reads should have been dropped")
	}
	if _, ok := store.Get(donorKey); !ok {
		t.Fatal("donor reads should have survived")
	}
}

func TestInvalidateUnknownMutationIsNoop(t *testing.T) {
	store, err := NewStore(100, time.Minute)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}

	key := Key(ResourceDonors, nil)
	store.Set(ResourceDonors, key, "donors")
	store.Invalidate(Mutation("not.a.mutation"))

	if _, ok := store.Get(key); !ok {
		t.Fatal("unknown mutation must not drop entries")
	}
}

func TestInvalidationTableCoversEveryMutation(t *testing.T) {
	mutations := []Mutation{
		MutationCampaignCreated, MutationCampaignUpdated, MutationCampaignDeleted,
		MutationDonationCreated, MutationDonationDeleted,
		MutationDonorCreated, MutationDonorUpdated, MutationDonorDeleted,
		MutationBulkImported,
	}
	for _, m := range mutations {
		resources, ok := Invalidations[m]
		if !ok || len(resources) == 0 {
			t.Fatalf("mutation %q has no invalidation targets", m)
		}
	}
}
