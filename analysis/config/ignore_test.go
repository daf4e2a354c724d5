// Copyright the Perlint authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"reflect"
	"testing"
)

func TestIgnoreRegistryMembership(t *testing.T) {
	r := NewIgnoreRegistry([]string{"Buffer", "Client"})
	if !r.Contains("Buffer") || !r.Contains("Client") {
		t.Errorf("listed symbols should be exempted")
	}
	if r.Contains("Other") {
		t.Errorf("unlisted symbol should not be exempted")
	}
}

func TestIgnoreRegistryDuplicatesAndOrder(t *testing.T) {
	r := NewIgnoreRegistry([]string{"b", "a", "b"})
	if r.Len() != 2 {
		t.Errorf("expected 2 names, got %d", r.Len())
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v, want [a b]", got)
	}
}

func TestIgnoreRegistryEmpty(t *testing.T) {
	r := NewIgnoreRegistry(nil)
	if r.Contains("anything") || r.Len() != 0 {
		t.Errorf("empty registry should exempt nothing")
	}
}
