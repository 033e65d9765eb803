// Package domain contains the core business entities, value objects, and
// domain logic of the bingo card generator: users, generated games, and the
// question/answer items that fill the cards. It is independent of any
// specific infrastructure or delivery mechanism.
package domain
