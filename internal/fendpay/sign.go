package fendpay

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// Sign implements the provider's MD5 scheme: drop empty values and the
// sign field itself, sort the remaining keys in ASCII order, join them as
// k=v pairs with &, append &key=SECRET and take the lowercase MD5 hex.
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == "sign" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
		b.WriteByte('&')
	}
	b.WriteString("key=")
	b.WriteString(secret)

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// VerifySign checks the sign field of an incoming callback.
func VerifySign(params map[string]string, secret string) bool {
	got, ok := params["sign"]
	if !ok || got == "" {
		return false
	}
	return strings.EqualFold(got, Sign(params, secret))
}
