// Package editorial derives every text artifact of a post package from the
// episode metadata: the long-form description, the hashtag list, resolved
// per-platform configuration, and the per-platform editorial bundle (short
// titles, captions, the Reddit markdown body). Every derivation is pure,
// deterministic, and total: missing metadata degrades to omitted sections or
// defaults, never to an error.
package editorial
