package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ==================== 错误类型 ====================

// ExtractionError 文本中找不到 { ... } 区间
type ExtractionError struct {
	Raw string
}

func (e *ExtractionError) Error() string {
	return "no JSON object found in model response"
}

// ParseError 找到了 { ... } 区间，但不是合法 JSON
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ==================== 提取 ====================

// Extract 从模型的自由文本中取出嵌入的 JSON 对象
//
// 取第一个 '{' 到最后一个 '}'（含两端）之间的子串解析。
// 已知限制：
//   - 文本里有多个独立对象时，会把它们连成一个区间，通常得到 ParseError
//   - 对象之后的说明文字里如果还有 '}'，区间会被拉长
func Extract(text string) (map[string]any, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &ExtractionError{Raw: text}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}

	return obj, nil
}

// RawText 返回提取失败时保留的原始文本
func RawText(err error) (string, bool) {
	var extractErr *ExtractionError
	if errors.As(err, &extractErr) {
		return extractErr.Raw, true
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Raw, true
	}
	return "", false
}
