package trie

import "fmt"

// decodeRLPList splits a top-level RLP list encoding into the raw bytes of
// each element. For a string element the returned bytes are its decoded
// content (header stripped); for a nested list element the returned bytes
// are the element's full encoding (header included), since that is exactly
// what decodeNode expects to recurse into for an inlined child.
func decodeRLPList(data []byte) ([][]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	prefix := data[0]
	if prefix < 0xc0 {
		return nil, fmt.Errorf("expected list, got string prefix 0x%02x", prefix)
	}

	var payload []byte
	switch {
	case prefix <= 0xf7:
		length := int(prefix - 0xc0)
		if 1+length > len(data) {
			return nil, fmt.Errorf("short list overruns input")
		}
		payload = data[1 : 1+length]
	default:
		lenLen := int(prefix - 0xf7)
		if 1+lenLen > len(data) {
			return nil, fmt.Errorf("long list length header overruns input")
		}
		length := decodeBigEndianLen(data[1 : 1+lenLen])
		if 1+lenLen+length > len(data) {
			return nil, fmt.Errorf("long list overruns input")
		}
		payload = data[1+lenLen : 1+lenLen+length]
	}

	var elems [][]byte
	for len(payload) > 0 {
		elem, rest, err := decodeOneElement(payload)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		payload = rest
	}
	return elems, nil
}

// decodeOneElement reads a single RLP element from the front of data and
// returns it along with whatever data follows.
func decodeOneElement(data []byte) (content, rest []byte, err error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("empty input")
	}
	prefix := data[0]
	switch {
	case prefix <= 0x7f:
		return data[:1], data[1:], nil

	case prefix == 0x80:
		return nil, data[1:], nil

	case prefix <= 0xb7:
		length := int(prefix - 0x80)
		if 1+length > len(data) {
			return nil, nil, fmt.Errorf("short string overruns input")
		}
		return data[1 : 1+length], data[1+length:], nil

	case prefix <= 0xbf:
		lenLen := int(prefix - 0xb7)
		if 1+lenLen > len(data) {
			return nil, nil, fmt.Errorf("long string length header overruns input")
		}
		length := decodeBigEndianLen(data[1 : 1+lenLen])
		end := 1 + lenLen + length
		if end > len(data) {
			return nil, nil, fmt.Errorf("long string overruns input")
		}
		return data[1+lenLen : end], data[end:], nil

	case prefix <= 0xf7:
		length := int(prefix - 0xc0)
		end := 1 + length
		if end > len(data) {
			return nil, nil, fmt.Errorf("short list overruns input")
		}
		return data[:end], data[end:], nil

	default:
		lenLen := int(prefix - 0xf7)
		if 1+lenLen > len(data) {
			return nil, nil, fmt.Errorf("long list length header overruns input")
		}
		length := decodeBigEndianLen(data[1 : 1+lenLen])
		end := 1 + lenLen + length
		if end > len(data) {
			return nil, nil, fmt.Errorf("long list overruns input")
		}
		return data[:end], data[end:], nil
	}
}

func decodeBigEndianLen(b []byte) int {
	n := 0
	for _, x := range b {
		n = n<<8 | int(x)
	}
	return n
}
