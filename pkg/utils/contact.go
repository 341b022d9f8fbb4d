package utils

import "regexp"

// 联系方式提取都是尽力而为的正则匹配，不是解析器
//
// 已知误报：邮箱的域名部分会被当成 @handle（hi@gmail.com -> gmail.com）
// 已知漏报：混淆写法（name [at] domain dot com）、不带 @ 的纯用户名

var (
	instagramURLPattern    = regexp.MustCompile(`instagram\.com/([a-zA-Z0-9._]+)`)
	instagramHandlePattern = regexp.MustCompile(`@([a-zA-Z0-9._]{3,})`)
	emailPattern           = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ExtractInstagram 从频道简介中找 Instagram 用户名
// 优先取 instagram.com/<handle>，其次取第一个不少于 3 个字符的 @handle
func ExtractInstagram(text string) (string, bool) {
	if m := instagramURLPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := instagramHandlePattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// ExtractEmail 返回文本中第一个形如 local@domain.tld 的地址
func ExtractEmail(text string) (string, bool) {
	if m := emailPattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}
