// flex_list.go
//
// A workout routine and exercise library data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of routinesdb.
// routinesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// routinesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with routinesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexList decodes a JSON array, a single value, or a comma separated string
// such as "3,1,2" into a list. Each element is decoded as T.
type FlexList[T any] []T

func (l *FlexList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case data[0] == '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	case data[0] == '"' && bytes.IndexByte(data, ',') >= 0:
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		parts := strings.Split(joined, ",")
		items := make([]T, 0, len(parts))
		for _, part := range parts {
			var item T
			if err := json.Unmarshal(strconv.AppendQuote(nil, strings.TrimSpace(part)), &item); err != nil {
				return err
			}
			items = append(items, item)
		}
		*l = items
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*l = FlexList[T]{item}
	return nil
}

// Slice returns the decoded items
func (l FlexList[T]) Slice() []T {
	return []T(l)
}
