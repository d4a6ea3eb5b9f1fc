package siteinfo_test

import (
	"testing"

	"github.com/fwojciec/siteinfo"
	"github.com/stretchr/testify/assert"
)

func TestCompanyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		url   string
		want  string
	}{
		{
			name:  "takes name before slogan separator",
			title: "Acme Robotics | Automation for everyone",
			url:   "https://acme-robotics.com",
			want:  "Acme Robotics",
		},
		{
			name:  "strips legal suffix",
			title: "Tower Research Capital LLC - Home",
			url:   "https://tower-research.com",
			want:  "Tower Research Capital",
		},
		{
			name:  "skips generic leading part",
			title: "Welcome | Initech Corporation",
			url:   "https://initech.com",
			want:  "Initech",
		},
		{
			name:  "falls back to domain stem when title missing",
			title: "N/A",
			url:   "https://www.tower-research.com/about",
			want:  "Tower Research",
		},
		{
			name:  "falls back to raw URL when nothing parses",
			title: "",
			url:   "not a url",
			want:  "not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, siteinfo.CompanyName(tt.title, tt.url))
		})
	}
}
