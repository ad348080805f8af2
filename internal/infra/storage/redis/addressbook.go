package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/airdrop/internal/addressbook"

	"github.com/redis/go-redis/v9"
)

// addressListKey returns the Redis key of the set holding the named list.
//
// Format: "airdrop:list:{name}"
func addressListKey(name string) string {
	return fmt.Sprintf("%s:list:%s", keyPrefix, name)
}

// Load implements addressbook.Store using SMEMBERS. Sets are unordered, so
// the result is returned sorted.
func (c *client) Load(ctx context.Context, name string) ([]addressbook.Address, error) {
	members, err := c.conn.SMembers(ctx, addressListKey(name)).Result()
	if err != nil {
		return nil, err
	}

	addrs := addressbook.NormalizeAll(members)
	return addressbook.SortedSet(addrs), nil
}

// Save implements addressbook.Store. DEL and SADD run in one MULTI/EXEC
// transaction so readers never observe a partially written list.
func (c *client) Save(ctx context.Context, name string, addrs []addressbook.Address) error {
	key := addressListKey(name)
	canonical := addressbook.Canonical(addrs)

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)

		if len(canonical) == 0 {
			return nil
		}

		// SAdd takes variadic any
		members := make([]any, len(canonical))
		for i, a := range canonical {
			members[i] = a.String()
		}

		pipe.SAdd(ctx, key, members...)
		return nil
	})

	return err
}

// Compile-time assertion to ensure client implements addressbook.Store.
var _ addressbook.Store = new(client)
