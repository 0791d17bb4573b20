package repositories

import (
	"testing"

	"github.com/campusmkt/marketplace/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	// An in-memory sqlite database exists per connection; keep the pool at one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(&models.User{}, &models.Post{}, &models.Interested{}, &models.Comment{})
	if err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Name: username, Email: email}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := NewGormUserRepository(db).CreateUser(user); err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return user
}

func mustCreatePost(t *testing.T, db *gorm.DB, owner *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Price: 50.0, UserID: owner.ID}
	if err := NewGormPostRepository(db).CreatePost(post); err != nil {
		t.Fatalf("creating post %s: %v", title, err)
	}
	return post
}

func TestUsernameAndEmailTaken(t *testing.T) {
	db := testDB(t)
	repo := NewGormUserRepository(db)
	mustCreateUser(t, db, "alice", "alice@example.com")

	cases := []struct {
		username string
		email    string
		taken    bool
	}{
		{"alice", "alice@example.com", true},
		{"bob", "bob@example.com", false},
	}
	for _, c := range cases {
		gotUser, err := repo.UsernameTaken(c.username)
		if err != nil {
			t.Fatalf("UsernameTaken(%s): %v", c.username, err)
		}
		gotEmail, err := repo.EmailTaken(c.email)
		if err != nil {
			t.Fatalf("EmailTaken(%s): %v", c.email, err)
		}
		if gotUser != c.taken || gotEmail != c.taken {
			t.Errorf("%s/%s: expected taken=%v, got %v/%v", c.username, c.email, c.taken, gotUser, gotEmail)
		}
	}
}

func TestInterestLifecycle(t *testing.T) {
	db := testDB(t)
	repo := NewGormInterestedRepository(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com")
	bob := mustCreateUser(t, db, "bob", "bob@example.com")
	post := mustCreatePost(t, db, bob, "Bike")

	has, err := repo.HasInterest(alice.ID, post.ID)
	if err != nil || has {
		t.Fatalf("expected no interest before ShowInterest, has=%v err=%v", has, err)
	}

	if err := repo.ShowInterest(alice.ID, post.ID); err != nil {
		t.Fatalf("ShowInterest: %v", err)
	}
	if has, _ = repo.HasInterest(alice.ID, post.ID); !has {
		t.Fatalf("expected interest after ShowInterest")
	}

	if err := repo.UnshowInterest(alice.ID, post.ID); err != nil {
		t.Fatalf("UnshowInterest: %v", err)
	}
	if has, _ = repo.HasInterest(alice.ID, post.ID); has {
		t.Fatalf("expected no interest after UnshowInterest")
	}
}

func TestShowInterestKeepsDuplicates(t *testing.T) {
	db := testDB(t)
	repo := NewGormInterestedRepository(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com")
	post := mustCreatePost(t, db, alice, "Lamp")

	// No dedup guard at the data layer: two calls mean two rows.
	if err := repo.ShowInterest(alice.ID, post.ID); err != nil {
		t.Fatalf("ShowInterest: %v", err)
	}
	if err := repo.ShowInterest(alice.ID, post.ID); err != nil {
		t.Fatalf("ShowInterest: %v", err)
	}
	count, err := repo.CountByPost(post.ID)
	if err != nil {
		t.Fatalf("CountByPost: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows, got %d", count)
	}

	// UnshowInterest removes every row for the pair.
	if err := repo.UnshowInterest(alice.ID, post.ID); err != nil {
		t.Fatalf("UnshowInterest: %v", err)
	}
	if count, _ = repo.CountByPost(post.ID); count != 0 {
		t.Fatalf("expected 0 rows after UnshowInterest, got %d", count)
	}
}

func TestInterestedMembersDedupedAndOrdered(t *testing.T) {
	db := testDB(t)
	repo := NewGormInterestedRepository(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com")
	bob := mustCreateUser(t, db, "bob", "bob@example.com")
	carol := mustCreateUser(t, db, "carol", "carol@example.com")
	post := mustCreatePost(t, db, alice, "Desk")

	// bob first, then carol, then a duplicate bob row.
	for _, userID := range []uint{bob.ID, carol.ID, bob.ID} {
		if err := repo.ShowInterest(userID, post.ID); err != nil {
			t.Fatalf("ShowInterest: %v", err)
		}
	}

	members, err := repo.InterestedMembers(post.ID)
	if err != nil {
		t.Fatalf("InterestedMembers: %v", err)
	}
	if members != "bob, carol" {
		t.Fatalf("expected %q, got %q", "bob, carol", members)
	}
}

func TestInterestedPostsSkipsDanglingReferences(t *testing.T) {
	db := testDB(t)
	repo := NewGormInterestedRepository(db)
	postRepo := NewGormPostRepository(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com")
	bob := mustCreateUser(t, db, "bob", "bob@example.com")
	first := mustCreatePost(t, db, bob, "Chair")
	second := mustCreatePost(t, db, bob, "Table")

	if err := repo.ShowInterest(alice.ID, first.ID); err != nil {
		t.Fatalf("ShowInterest: %v", err)
	}
	if err := repo.ShowInterest(alice.ID, second.ID); err != nil {
		t.Fatalf("ShowInterest: %v", err)
	}

	// Deleting a post leaves its interest rows behind; they must be skipped.
	if err := postRepo.DeletePost(first.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	posts, err := repo.InterestedPosts(alice.ID)
	if err != nil {
		t.Fatalf("InterestedPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Table" {
		t.Fatalf("expected only Table to survive, got %+v", posts)
	}
}

func TestSetSoldIdempotent(t *testing.T) {
	db := testDB(t)
	repo := NewGormPostRepository(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com")
	post := mustCreatePost(t, db, alice, "Bike")

	for i := 0; i < 2; i++ {
		if err := repo.SetSold(post.ID, true); err != nil {
			t.Fatalf("SetSold: %v", err)
		}
	}
	got, err := repo.GetPostByID(post.ID)
	if err != nil {
		t.Fatalf("GetPostByID: %v", err)
	}
	if !got.Sold {
		t.Fatalf("expected sold after repeated markings")
	}

	if err := repo.SetSold(post.ID, false); err != nil {
		t.Fatalf("SetSold: %v", err)
	}
	if got, _ = repo.GetPostByID(post.ID); got.Sold {
		t.Fatalf("expected unsold after unmarking")
	}
}

func TestCommentCreationAndCounts(t *testing.T) {
	db := testDB(t)
	repo := NewGormCommentRepository(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com")
	post := mustCreatePost(t, db, alice, "Bike")

	count, err := repo.CountByPost(post.ID)
	if err != nil || count != 0 {
		t.Fatalf("expected no comments, count=%d err=%v", count, err)
	}

	comment := &models.Comment{Text: "still available?", UserID: alice.ID, PostID: post.ID}
	if err := repo.CreateComment(comment); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.CreatedAt.IsZero() {
		t.Fatalf("expected per-row creation timestamp")
	}

	comments, err := repo.GetCommentsByPostID(post.ID)
	if err != nil {
		t.Fatalf("GetCommentsByPostID: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "still available?" {
		t.Fatalf("unexpected comments: %+v", comments)
	}
	if count, _ = repo.CountByPost(post.ID); count != 1 {
		t.Fatalf("expected 1 comment, got %d", count)
	}
}

func TestTouchLastSeen(t *testing.T) {
	db := testDB(t)
	repo := NewGormUserRepository(db)
	alice := mustCreateUser(t, db, "alice", "alice@example.com")

	if err := repo.TouchLastSeen(alice.ID); err != nil {
		t.Fatalf("TouchLastSeen: %v", err)
	}
	got, err := repo.GetUserByID(alice.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.LastSeen.IsZero() {
		t.Fatalf("expected last seen to be stamped")
	}
}
