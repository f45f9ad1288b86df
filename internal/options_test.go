package internal

import "testing"

func TestOptionsValidate(t *testing.T) {
	opts := ScanOptions{Workers: -1}
	if err := opts.Validate(); err == nil {
		t.Fatal("negative workers should fail validation")
	}
	opts.Workers = 0
	if err := opts.Validate(); err != nil {
		t.Fatalf("zero workers should validate: %v", err)
	}
}

func TestOptionsPrepare_Defaults(t *testing.T) {
	var opts ScanOptions
	opts.Prepare()
	if opts.Workers != 1 {
		t.Fatalf("default workers should be 1, got %d", opts.Workers)
	}
	opts.Workers = 8
	opts.Prepare()
	if opts.Workers != 8 {
		t.Fatalf("explicit workers must be kept, got %d", opts.Workers)
	}
}
