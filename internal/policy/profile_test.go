package policy

import "testing"

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		mode     string
		maturity string
		want     Profile
		wantErr  bool
	}{
		{
			name: "all empty falls back to defaults",
			want: DefaultProfile(),
		},
		{
			name: "explicit dimensions",
			role: "builder", mode: "build", maturity: "scaling",
			want: Profile{Role: RoleBuilder, Mode: ModeBuild, Maturity: MaturityScaling},
		},
		{
			name: "partial input fills the rest",
			role: "operator",
			want: Profile{Role: RoleOperator, Mode: ModeOverview, Maturity: MaturityFoundation},
		},
		{name: "unknown role", role: "intern", wantErr: true},
		{name: "unknown mode", mode: "panic", wantErr: true},
		{name: "unknown maturity", maturity: "legendary", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.role, tt.mode, tt.maturity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProfile error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseProfile = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPresetsAreValid(t *testing.T) {
	for name, p := range Presets {
		if _, err := ParseProfile(string(p.Role), string(p.Mode), string(p.Maturity)); err != nil {
			t.Errorf("preset %q holds an invalid profile: %v", name, err)
		}
	}
	for slug, p := range SectionDefaults {
		if _, err := ParseProfile(string(p.Role), string(p.Mode), string(p.Maturity)); err != nil {
			t.Errorf("section default %q holds an invalid profile: %v", slug, err)
		}
	}
}
