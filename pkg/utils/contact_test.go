package utils

import "testing"

func TestExtractInstagram(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"主页链接", "Follow me: https://www.instagram.com/green.kitchen/ for daily recipes", "green.kitchen", true},
		{"链接优先于 @handle", "@other_name and instagram.com/real_one", "real_one", true},
		{"@handle", "IG: @plant_power", "plant_power", true},
		{"handle 太短", "ping @ab for more", "", false},
		{"邮箱域名被当成 handle", "hi@gmail.com", "gmail.com", true},
		{"没有联系方式", "Just cooking videos.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractInstagram(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractInstagram(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"普通邮箱", "Business inquiries: collab@plantpower.io", "collab@plantpower.io", true},
		{"取第一个", "a.b+tag@mail.example.com or c@d.org", "a.b+tag@mail.example.com", true},
		{"混淆写法", "name [at] domain dot com", "", false},
		{"没有顶级域名", "user@localhost", "", false},
		{"空文本", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractEmail(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractEmail(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
