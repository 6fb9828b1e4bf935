package param

import (
	"reflect"
	"testing"
)

func TestParseQuery(t *testing.T) {
	testCases := []struct {
		title    string
		query    string
		expected List
	}{
		{
			title:    "Empty query",
			query:    "",
			expected: List{},
		},
		{
			title:    "Typical case",
			query:    "a=b&c=d",
			expected: Of("a", "b", "c", "d"),
		},
		{
			title:    "Key only",
			query:    "x",
			expected: Of("x", ""),
		},
		{
			title:    "Key with equals",
			query:    "x=",
			expected: Of("x", ""),
		},
		{
			title:    "Empty segments are dropped",
			query:    "&&a=1&&b=2&",
			expected: Of("a", "1", "b", "2"),
		},
		{
			title:    "Duplicates are kept in order",
			query:    "foo=3&bar=1&foo=2",
			expected: Of("foo", "3", "bar", "1", "foo", "2"),
		},
		{
			title:    "Only the first equals splits",
			query:    "eq=a=b",
			expected: Of("eq", "a=b"),
		},
		{
			title:    "Percent escapes and plus",
			query:    "q=hello+world&amp=love+%26+peace&%E2%9C%93=%F0%9F%8D%BA",
			expected: Of("q", "hello world", "amp", "love & peace", "✓", "🍺"),
		},
		{
			title:    "Malformed escape is kept literally",
			query:    "bad=100%&worse=%zz+ok&good=%41",
			expected: Of("bad", "100%", "worse", "%zz ok", "good", "A"),
		},
		{
			title:    "Malformed escape does not spoil the rest of the segment",
			query:    "k=%4%41",
			expected: Of("k", "%4A"),
		},
		{
			title:    "Leading question mark belongs to the name",
			query:    "?x=1",
			expected: Of("?x", "1"),
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			actual := ParseQuery(tt.query)
			if !reflect.DeepEqual(actual, tt.expected) {
				t.Errorf("unexpected parameters: expected=%v, actual=%v", tt.expected, actual)
			}
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	testCases := []struct {
		title    string
		params   List
		expected string
	}{
		{
			title:    "Empty",
			params:   nil,
			expected: "",
		},
		{
			title:    "Order and duplicates are preserved",
			params:   Of("foo", "value 1", "bar", "x", "foo", "value 2"),
			expected: "foo=value+1&bar=x&foo=value+2",
		},
		{
			title:    "Empty value keeps the equals sign",
			params:   Of("hello", ""),
			expected: "hello=",
		},
		{
			title:    "Reserved characters",
			params:   Of("a&b", "love & peace", "c=d", "100%"),
			expected: "a%26b=love+%26+peace&c%3Dd=100%25",
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			actual := EncodeQuery(tt.params)
			if actual != tt.expected {
				t.Errorf("unexpected query: expected=%s, actual=%s", tt.expected, actual)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	lists := []List{
		{},
		Of("a", "b"),
		Of("hello", "", "hello", "world"),
		Of("space name", "love & peace", "eq=", "=", "pct", "100%"),
		Of("日本語", "🍣 & 🍺", "plus", "1+1=2"),
	}
	for _, params := range lists {
		actual := ParseQuery(EncodeQuery(params))
		if !reflect.DeepEqual(actual, params) {
			t.Errorf("round trip failed: expected=%v, actual=%v", params, actual)
		}
	}
}
