// name_list.go
//
// Wedding invitation site data service: RSVPs, guest messages and background music
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of wedding-site.
// wedding-site is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// wedding-site is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with wedding-site.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package types

import (
	"encoding/json"
	"strings"
)

// NameList is a list of names that can be unmarshaled from either a JSON array
// or a single comma-separated string. Blank entries are dropped.
type NameList []string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (n *NameList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*n = nil
		return nil
	}

	// If it starts with '[', treat it as a normal array
	if data[0] == '[' {
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return err
		}
		*n = compact(names)
		return nil
	}

	// Otherwise it is the legacy comma-joined form
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*n = compact(strings.Split(joined, ","))
	return nil
}

// Slice converts NameList back to []string.
func (n NameList) Slice() []string {
	return []string(n)
}

func compact(names []string) NameList {
	var out NameList
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
