package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
)

func TestSetAndCheckPassword(t *testing.T) {
	var u User
	if err := u.SetPassword("secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Fatalf("plaintext must not be stored")
	}
	if !u.CheckPassword("secret123") {
		t.Fatalf("correct password rejected")
	}
	if u.CheckPassword("wrong") {
		t.Fatalf("wrong password accepted")
	}
	if u.CheckPassword("") {
		t.Fatalf("empty password accepted")
	}

	// Only the last password set must verify.
	if err := u.SetPassword("newsecret"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if u.CheckPassword("secret123") {
		t.Fatalf("old password still accepted")
	}
	if !u.CheckPassword("newsecret") {
		t.Fatalf("new password rejected")
	}
}

func TestAvatarURL(t *testing.T) {
	u := User{Email: "Alice@Example.COM"}
	lower := User{Email: "alice@example.com"}
	if u.AvatarURL(128) != lower.AvatarURL(128) {
		t.Fatalf("avatar must be derived from the lower-cased email")
	}

	digest := md5.Sum([]byte("alice@example.com"))
	want := fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=128",
		hex.EncodeToString(digest[:]))
	if got := u.AvatarURL(128); got != want {
		t.Fatalf("avatar URL mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestImageListsStayAligned(t *testing.T) {
	p := Post{
		ImageFilenames: "photo.jpg;;other.png",
		ImagePaths:     "static/uploads/photo.jpg;;static/uploads/other.png",
	}
	names := p.ImageFilenameList()
	paths := p.ImagePathList()
	if len(names) != 3 || len(paths) != 3 {
		t.Fatalf("expected 3 aligned slots, got %d and %d", len(names), len(paths))
	}
	if names[1] != "" || paths[1] != "" {
		t.Fatalf("rejected upload slot must stay empty on both lists")
	}
	if !strings.HasSuffix(paths[2], names[2]) {
		t.Fatalf("path %q does not correspond to filename %q", paths[2], names[2])
	}
}
