package gcp

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

func TestObjectURI(t *testing.T) {
	if got := ObjectURI("music", "/tracks/intro.mp3"); got != "gs://music/tracks/intro.mp3" {
		t.Fatalf("uri: got=%s", got)
	}
}

func TestClientOptionsFromEnv(t *testing.T) {
	t.Setenv("STORAGE_EMULATOR_HOST", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS_JSON", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	if opts := ClientOptionsFromEnv(); opts != nil {
		t.Fatalf("no creds: want nil got=%d opts", len(opts))
	}
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")
	if opts := ClientOptionsFromEnv(); len(opts) != 1 {
		t.Fatalf("file creds: want 1 opt got=%d", len(opts))
	}
	t.Setenv("STORAGE_EMULATOR_HOST", "http://127.0.0.1:4443")
	if opts := ClientOptionsFromEnv(); len(opts) != 1 {
		t.Fatalf("emulator: want 1 opt got=%d", len(opts))
	}
}

func TestMusicBucketEmulatorMissingObject(t *testing.T) {
	if strings.TrimSpace(os.Getenv("STORAGE_EMULATOR_HOST")) == "" || strings.TrimSpace(os.Getenv("TEST_MUSIC_BUCKET")) == "" {
		t.Skip("set STORAGE_EMULATOR_HOST and TEST_MUSIC_BUCKET to run emulator tests")
	}
	b, err := NewMusicBucket(context.Background(), logger.Nop(), os.Getenv("TEST_MUSIC_BUCKET"))
	if err != nil {
		t.Fatalf("NewMusicBucket: %v", err)
	}
	defer b.Close()

	_, err = b.ObjectAttrs(context.Background(), "does/not/exist.mp3")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("want ErrObjectNotFound got=%v", err)
	}
}
