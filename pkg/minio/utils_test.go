package minio

import "testing"

func TestParseObjectRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantKey string
		wantErr bool
	}{
		{"plain key", "tickets/7/log.txt", "tickets/7/log.txt", false},
		{"bucket prefixed", "attachments/tickets/7/log.txt", "tickets/7/log.txt", false},
		{"url", "https://files.example.com/attachments/tickets/7/a.png", "tickets/7/a.png", false},
		{"url without bucket", "http://files.example.com/a.png", "a.png", false},
		{"empty", "  ", "", true},
		{"directory", "tickets/7/", "", true},
		{"traversal", "../secrets", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := ParseObjectRef(tt.ref, "attachments")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseObjectRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if bucket != "attachments" || key != tt.wantKey {
				t.Errorf("ParseObjectRef(%q) = %q, %q; want attachments, %q", tt.ref, bucket, key, tt.wantKey)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := Config{Endpoint: "minio", AccessKey: "a", SecretKey: "s", Bucket: "attachments"}
	if err := validateConfig(&cfg); err != nil {
		t.Fatalf("validateConfig() = %v", err)
	}
	if cfg.Endpoint != "minio:9000" {
		t.Errorf("endpoint = %q, want default port appended", cfg.Endpoint)
	}

	if err := validateConfig(&Config{Endpoint: "minio"}); err == nil {
		t.Error("expected error for missing credentials")
	}
}
