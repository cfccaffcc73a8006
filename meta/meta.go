// meta/meta.go
package meta

// NUM_PLAYERS is the number of players in every game. A game ends once this many passes happen in a row.
const NUM_PLAYERS = 2

// DEFAULT_BOARD_SIZE replaces a board side length the chosen topology cannot build.
const DEFAULT_BOARD_SIZE = 6

// MIN_HEX_BOARD_SIZE is the smallest side length of a hexagonal board.
const MIN_HEX_BOARD_SIZE = 3

// MAX_ROUNDS stops a runaway game loop. No legal game on a supported board gets close.
const MAX_ROUNDS = 10000
