package archive

import (
	"bytes"
	"encoding/json"
)

// ReadShard parses one archive shard into normalized records. A shard is a
// UTF-8 text blob whose first line is a JavaScript assignment prefix and whose
// remaining lines form a JSON array of raw tweets. Any element failing
// extraction fails the whole shard; there is no partial-record recovery.
func ReadShard(data []byte, resolver *Resolver) ([]Record, error) {
	payload, ok := stripHeaderLine(data)
	if !ok {
		return nil, &FormatError{Reason: "missing header line"}
	}

	var tweets []RawTweet
	if err := json.Unmarshal(payload, &tweets); err != nil {
		return nil, &ParseError{Value: "shard JSON", Err: err}
	}

	records := make([]Record, 0, len(tweets))
	for _, tweet := range tweets {
		rec, err := Extract(tweet)
		if err != nil {
			return nil, err
		}
		rec.LocalTime = resolver.Resolve(rec.Latitude, rec.Longitude, rec.UTCTime)
		records = append(records, rec)
	}

	return records, nil
}

// stripHeaderLine drops exactly the first line of the blob. The remainder is
// expected to be plain JSON.
func stripHeaderLine(data []byte) ([]byte, bool) {
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		return nil, false
	}
	return data[idx+1:], true
}
