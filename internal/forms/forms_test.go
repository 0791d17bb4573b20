package forms

import (
	"testing"

	"github.com/campusmkt/marketplace/internal/models"
	"github.com/campusmkt/marketplace/internal/repositories"
	"github.com/campusmkt/marketplace/validators"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestRegisterFormValidation(t *testing.T) {
	v := validators.NewValidator()
	cases := []struct {
		name string
		form RegisterForm
		ok   bool
	}{
		{"valid", RegisterForm{Username: "alice", Name: "Alice", Email: "alice@example.com", Password: "pw", Password2: "pw"}, true},
		{"venmo optional", RegisterForm{Username: "alice", Name: "Alice", Email: "alice@example.com", Password: "pw", Password2: "pw", Venmo: "alice-v"}, true},
		{"missing username", RegisterForm{Name: "Alice", Email: "alice@example.com", Password: "pw", Password2: "pw"}, false},
		{"bad email", RegisterForm{Username: "alice", Name: "Alice", Email: "nope", Password: "pw", Password2: "pw"}, false},
		{"password mismatch", RegisterForm{Username: "alice", Name: "Alice", Email: "alice@example.com", Password: "pw", Password2: "other"}, false},
	}
	for _, c := range cases {
		err := v.Validate(&c.form)
		if c.ok && err != nil {
			t.Errorf("%s: expected valid, got %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestRegisterFormCheckUnique(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	repo := repositories.NewGormUserRepository(db)
	if err := repo.CreateUser(&models.User{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	cases := []struct {
		name string
		form RegisterForm
		ok   bool
	}{
		{"fresh", RegisterForm{Username: "bob", Email: "bob@example.com"}, true},
		{"duplicate username", RegisterForm{Username: "alice", Email: "bob@example.com"}, false},
		{"duplicate email", RegisterForm{Username: "bob", Email: "alice@example.com"}, false},
	}
	for _, c := range cases {
		err := c.form.CheckUnique(repo)
		if c.ok && err != nil {
			t.Errorf("%s: expected ok, got %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestOtherForms(t *testing.T) {
	v := validators.NewValidator()
	cases := []struct {
		name string
		form interface{}
		ok   bool
	}{
		{"login valid", &LoginForm{Username: "alice", Password: "pw"}, true},
		{"login missing password", &LoginForm{Username: "alice"}, false},
		{"post valid", &PostForm{Title: "Bike", Price: 50.0}, true},
		{"post missing title", &PostForm{Price: 50.0}, false},
		{"post missing price", &PostForm{Title: "Bike"}, false},
		{"comment valid", &CommentForm{Text: "hi"}, true},
		{"comment empty", &CommentForm{}, false},
		{"reset request valid", &ResetPasswordRequestForm{Email: "a@b.co"}, true},
		{"reset request bad email", &ResetPasswordRequestForm{Email: "nope"}, false},
		{"reset valid", &ResetPasswordForm{Password: "pw", Password2: "pw"}, true},
		{"reset mismatch", &ResetPasswordForm{Password: "pw", Password2: "no"}, false},
	}
	for _, c := range cases {
		err := v.Validate(c.form)
		if c.ok && err != nil {
			t.Errorf("%s: expected valid, got %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
