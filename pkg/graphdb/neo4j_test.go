package graphdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSSCScheme(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"neo4j+s://host:7687", "neo4j+ssc://host:7687"},
		{"neo4j://host:7687", "neo4j+ssc://host:7687"},
		{"bolt://host:7687", "neo4j+ssc://host:7687"},
		{"bolt+ssc://host:7687", "neo4j+ssc://host:7687"},
		{"neo4j+ssc://host:7687", "neo4j+ssc://host:7687"},
		{"weird://host", "weird://host"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, toSSCScheme(tc.in), "uri=%s", tc.in)
	}
}
