package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

func newTestSeeder() (*Seeder, *stubRoleRepo, *stubUserRepo, *stubWorkplaceRepo) {
	roles := &stubRoleRepo{names: map[string]bool{domain.RoleUser: true}}
	users := newStubUserRepo()
	workplaces := newStubWorkplaceRepo(users)
	s := NewSeeder(roles, users, workplaces, zerolog.Nop())
	s.hashCost = bcrypt.MinCost
	return s, roles, users, workplaces
}

func TestSeeder_SeedRoles_Idempotent(t *testing.T) {
	s, roles, _, _ := newTestSeeder()

	for i := 0; i < 2; i++ {
		if err := s.SeedRoles(context.Background()); err != nil {
			t.Fatalf("SeedRoles: %v", err)
		}
	}
	for _, r := range domain.AllRoles {
		if !roles.names[r] {
			t.Fatalf("role %q not seeded", r)
		}
	}
	if len(roles.names) != len(domain.AllRoles) {
		t.Fatalf("unexpected roles: %v", roles.names)
	}
}

func TestSeeder_SeedAdmin(t *testing.T) {
	s, _, users, workplaces := newTestSeeder()
	seed := AdminSeed{Username: "root", Password: "changeme1", Workplace: "HQ"}

	for i := 0; i < 2; i++ {
		if err := s.SeedAdmin(context.Background(), seed); err != nil {
			t.Fatalf("SeedAdmin: %v", err)
		}
	}

	if len(users.byID) != 1 || len(workplaces.byID) != 1 {
		t.Fatalf("expected one admin and one workplace, got %d / %d", len(users.byID), len(workplaces.byID))
	}
	admin, _ := users.FindByUsername(context.Background(), "root")
	if !domain.Roles(users.roles[admin.ID]).Has(domain.RoleAdmin) || !domain.Roles(users.roles[admin.ID]).Has(domain.RoleUser) {
		t.Fatalf("unexpected admin roles: %v", users.roles[admin.ID])
	}
	if w, _ := workplaces.FindByID(context.Background(), admin.WorkplaceID); w == nil || w.Name != "HQ" {
		t.Fatalf("admin not placed in HQ")
	}
}

func TestSeeder_SeedAdmin_SkippedWhenUnconfigured(t *testing.T) {
	s, _, users, _ := newTestSeeder()
	if err := s.SeedAdmin(context.Background(), AdminSeed{Username: "root"}); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}
	if len(users.byID) != 0 {
		t.Fatalf("expected no admin without password")
	}
}
