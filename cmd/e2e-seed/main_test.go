package main

import (
	"testing"
)

func TestLoadFixtureConfig_Defaults(t *testing.T) {
	fx := loadFixtureConfig()
	if fx.GroupID != defaultGroupID {
		t.Errorf("GroupID = %q, want %q", fx.GroupID, defaultGroupID)
	}
	if fx.ReaderID != defaultReaderID {
		t.Errorf("ReaderID = %q, want %q", fx.ReaderID, defaultReaderID)
	}
	if fx.StreamerID != defaultStreamerID {
		t.Errorf("StreamerID = %q, want %q", fx.StreamerID, defaultStreamerID)
	}
}

func TestLoadFixtureConfig_EnvOverrides(t *testing.T) {
	t.Setenv("E2E_GROUP_ID", "custom-group")
	t.Setenv("E2E_READER_ID", "custom-reader")

	fx := loadFixtureConfig()
	if fx.GroupID != "custom-group" {
		t.Errorf("GroupID = %q, want %q", fx.GroupID, "custom-group")
	}
	if fx.ReaderID != "custom-reader" {
		t.Errorf("ReaderID = %q, want %q", fx.ReaderID, "custom-reader")
	}
	if fx.StreamerID != defaultStreamerID {
		t.Errorf("StreamerID = %q, want default %q", fx.StreamerID, defaultStreamerID)
	}
}
