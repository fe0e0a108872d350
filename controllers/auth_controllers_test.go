package controllers

import "testing"

func TestGoogleUserFromClaims(t *testing.T) {
	claims := map[string]interface{}{
		"name":           "Nguyen Van A",
		"email":          "a@example.com",
		"email_verified": true,
		"picture":        "https://example.com/a.png",
	}

	user, err := googleUserFromClaims(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "a@example.com" || user.Name != "Nguyen Van A" || !user.VerifiedEmail {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestGoogleUserFromClaimsMissingOptionalFields(t *testing.T) {
	// Payload chỉ có email, các claim khác thiếu hoặc sai kiểu
	claims := map[string]interface{}{
		"email":          "a@example.com",
		"email_verified": "true",
	}

	user, err := googleUserFromClaims(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.VerifiedEmail {
		t.Error("expected unverified email for non-bool claim")
	}
	if user.Name != "" || user.Picture != "" {
		t.Errorf("expected empty optional fields, got %+v", user)
	}
}

func TestGoogleUserFromClaimsMissingEmail(t *testing.T) {
	if _, err := googleUserFromClaims(map[string]interface{}{"name": "A"}); err == nil {
		t.Error("expected error when email claim is missing")
	}
}
