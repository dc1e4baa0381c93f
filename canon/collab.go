package canon

// CharsetConverter converts query strings from UTF-16 into a legacy charset.
// Characters the charset cannot represent should be written as the escaped
// HTML numeric entity "%26%23<decimal>%3B".
type CharsetConverter interface {
	ConvertFromUTF16(units []uint16) []byte
}

// HostTranscoder converts a Unicode host name into its ASCII form.
// [golang.org/x/net/idna.Profile] implements it.
type HostTranscoder interface {
	ToASCII(host string) (string, error)
}
