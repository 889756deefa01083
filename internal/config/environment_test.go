package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("BIRIBAR_TEST_STR", "value")

	if got := GetEnv("BIRIBAR_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want %q", got, "value")
	}
	if got := GetEnv("BIRIBAR_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want %q", got, "fallback")
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("BIRIBAR_TEST_BOOL", "true")
	if !GetEnvAsBool("BIRIBAR_TEST_BOOL", false) {
		t.Errorf("GetEnvAsBool = false, want true")
	}

	// Unset and unparseable values fall back to the default.
	if GetEnvAsBool("BIRIBAR_TEST_MISSING", false) {
		t.Errorf("GetEnvAsBool for unset var = true, want false")
	}
	t.Setenv("BIRIBAR_TEST_BOOL", "yes please")
	if GetEnvAsBool("BIRIBAR_TEST_BOOL", false) {
		t.Errorf("GetEnvAsBool for invalid value = true, want false")
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("BIRIBAR_TEST_INT", "3600")
	if got := GetEnvAsInt("BIRIBAR_TEST_INT", 60); got != 3600 {
		t.Errorf("GetEnvAsInt = %d, want 3600", got)
	}

	t.Setenv("BIRIBAR_TEST_INT", "an hour")
	if got := GetEnvAsInt("BIRIBAR_TEST_INT", 60); got != 60 {
		t.Errorf("GetEnvAsInt for invalid value = %d, want 60", got)
	}
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("BIRIBAR_TEST_SLICE", "a.com,b.com")
	got := GetEnvAsSlice("BIRIBAR_TEST_SLICE", ",", []string{"localhost"})
	if len(got) != 2 || got[0] != "a.com" || got[1] != "b.com" {
		t.Errorf("GetEnvAsSlice = %v, want [a.com b.com]", got)
	}

	got = GetEnvAsSlice("BIRIBAR_TEST_MISSING", ",", []string{"localhost"})
	if len(got) != 1 || got[0] != "localhost" {
		t.Errorf("GetEnvAsSlice for unset var = %v, want [localhost]", got)
	}
}
