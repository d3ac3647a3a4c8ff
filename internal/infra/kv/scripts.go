package kv

import "github.com/redis/go-redis/v9"

// KEYS layout for every ledger script, see keyspace.ledgerKeys:
//   1 count  2 emails  3 holds  4 hold_emails  5 email_holds  6 orders  7 log
//
// holds is a sorted set of hold ids scored by expiry (unix ms). A hold is
// live while its score is greater than now.

const pruneExpiredHolds = `
local function prune(now)
  local expired = redis.call('ZRANGEBYSCORE', KEYS[3], '-inf', now)
  for _, id in ipairs(expired) do
    local email = redis.call('HGET', KEYS[4], id)
    if email then
      if redis.call('HGET', KEYS[5], email) == id then
        redis.call('HDEL', KEYS[5], email)
      end
      redis.call('HDEL', KEYS[4], id)
    end
  end
  if #expired > 0 then
    redis.call('ZREMRANGEBYSCORE', KEYS[3], '-inf', now)
  end
end
`

// ARGV: email, hold id, now, expires at, max uses, released cap
var placeHoldScript = redis.NewScript(pruneExpiredHolds + `
prune(ARGV[3])
if redis.call('SISMEMBER', KEYS[2], ARGV[1]) == 1 then
  return 'ALREADY_CLAIMED'
end
if redis.call('HEXISTS', KEYS[5], ARGV[1]) == 1 then
  return 'ALREADY_CLAIMED'
end
local committed = tonumber(redis.call('GET', KEYS[1]) or '0') + redis.call('ZCARD', KEYS[3])
if committed >= tonumber(ARGV[5]) then
  return 'EXHAUSTED'
end
if committed >= tonumber(ARGV[6]) then
  return 'NOT_RELEASED'
end
redis.call('ZADD', KEYS[3], ARGV[4], ARGV[2])
redis.call('HSET', KEYS[4], ARGV[2], ARGV[1])
redis.call('HSET', KEYS[5], ARGV[1], ARGV[2])
return 'OK'
`)

// ARGV: email, order reference, now, max uses, log entry
var claimScript = redis.NewScript(pruneExpiredHolds + `
if redis.call('SISMEMBER', KEYS[6], ARGV[2]) == 1 then
  return 'DUPLICATE'
end
prune(ARGV[3])
if redis.call('SISMEMBER', KEYS[2], ARGV[1]) == 1 then
  return 'ALREADY_CLAIMED'
end
local claimed = tonumber(redis.call('GET', KEYS[1]) or '0')
if claimed >= tonumber(ARGV[4]) then
  return 'EXHAUSTED'
end
local outcome = 'DIRECT'
local holdId = redis.call('HGET', KEYS[5], ARGV[1])
if holdId then
  redis.call('ZREM', KEYS[3], holdId)
  redis.call('HDEL', KEYS[4], holdId)
  redis.call('HDEL', KEYS[5], ARGV[1])
  outcome = 'CONFIRMED_HOLD'
elseif claimed + redis.call('ZCARD', KEYS[3]) >= tonumber(ARGV[4]) then
  return 'EXHAUSTED'
end
redis.call('INCR', KEYS[1])
redis.call('SADD', KEYS[2], ARGV[1])
redis.call('SADD', KEYS[6], ARGV[2])
redis.call('RPUSH', KEYS[7], ARGV[5])
return outcome
`)

// ARGV: hold id
var releaseHoldScript = redis.NewScript(`
local email = redis.call('HGET', KEYS[4], ARGV[1])
if not email then
  return 0
end
redis.call('ZREM', KEYS[3], ARGV[1])
redis.call('HDEL', KEYS[4], ARGV[1])
if redis.call('HGET', KEYS[5], email) == ARGV[1] then
  redis.call('HDEL', KEYS[5], email)
end
return 1
`)

// ARGV: email, now. Returns {claimed, held}.
var emailStateScript = redis.NewScript(`
local claimed = redis.call('SISMEMBER', KEYS[2], ARGV[1])
local held = 0
local holdId = redis.call('HGET', KEYS[5], ARGV[1])
if holdId then
  local expiresAt = redis.call('ZSCORE', KEYS[3], holdId)
  if expiresAt and tonumber(expiresAt) > tonumber(ARGV[2]) then
    held = 1
  end
end
return {claimed, held}
`)

// ARGV: count, clear emails ('1' or '0'). Holds are always dropped; the
// order set and log are never touched.
var resetScript = redis.NewScript(`
redis.call('SET', KEYS[1], ARGV[1])
if ARGV[2] == '1' then
  redis.call('DEL', KEYS[2])
end
redis.call('DEL', KEYS[3], KEYS[4], KEYS[5])
return 1
`)
