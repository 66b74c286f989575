package database

import (
	"context"
	"database/sql"
	_ "embed"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"auction-market/configs"
	"auction-market/pkg/errors"
	"auction-market/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
)

//go:embed schema.sql
var schema string

// Service is the durable store for users, auctions, items and bids.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	// Migrate applies the embedded schema.
	Migrate(ctx context.Context) error

	// USER METHODS
	CreateUser(ctx context.Context, user types.User) (types.User, error)
	GetUserByUsername(ctx context.Context, username string) (types.User, error)

	// AUCTION METHODS
	CreateAuction(ctx context.Context, auction types.Auction) (types.Auction, error)
	GetActiveAuctions(ctx context.Context) ([]types.Auction, error)
	GetAuctionByID(ctx context.Context, auctionID int) (types.Auction, error)

	// ITEM METHODS
	CreateItem(ctx context.Context, item types.Item) (types.Item, error)
	GetItemsByAuction(ctx context.Context, auctionID int) ([]types.Item, error)
	GetItemByID(ctx context.Context, itemID int) (types.Item, error)

	// BID METHODS
	CreateBid(ctx context.Context, bid types.Bid) (types.Bid, error)
	GetUserBids(ctx context.Context, userID int) ([]types.UserBid, error)
	DeleteBid(ctx context.Context, bidID int) error

	// TRANSACTION METHODS
	//
	// InTx runs fn inside a single serializable transaction, committing on
	// a nil return and rolling back otherwise.
	InTx(ctx context.Context, fn func(tx *sql.Tx) error) error
	GetItemForUpdateTx(ctx context.Context, tx *sql.Tx, itemID int) (types.Item, error)
	UpdateItemPriceTx(ctx context.Context, tx *sql.Tx, itemID int, price float64) (types.Item, error)
	CreateBidTx(ctx context.Context, tx *sql.Tx, bid types.Bid) (types.Bid, error)
}

type service struct {
	db *sql.DB
}

func New(cfg *configs.Config) (Service, error) {
	dbConfig := cfg.Database
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.Name,
		dbConfig.SSLMode,
	)

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}

	if dbConfig.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dbConfig.MaxOpenConns)
	}
	if dbConfig.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dbConfig.MaxIdleConns)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	return &service{db: db}, nil
}

// NewWithDB wraps an existing connection. Used by tests.
func NewWithDB(db *sql.DB) Service {
	return &service{db: db}
}

// Health checks the health of the database connection by pinging the database.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Errorf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

func (s *service) Close() error {
	log.Info("Disconnected from database")
	return s.db.Close()
}

func (s *service) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "error applying schema")
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return stderrors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *service) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	query := `
        INSERT INTO users (username, email, password, user_type)
        VALUES ($1, $2, $3, $4)
        RETURNING user_id, username, email, password, user_type
    `
	var created types.User
	err := s.db.QueryRowContext(ctx, query, user.Username, user.Email, user.Password, user.Role).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.Password,
		&created.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.User{}, errors.WrapCode(errors.ErrUsernameTaken, err, "username already exists")
		}
		return types.User{}, errors.Wrap(err, "error creating user")
	}
	return created, nil
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (types.User, error) {
	query := `
        SELECT user_id, username, email, password, user_type
        FROM users
        WHERE username = $1
    `
	var user types.User
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Role,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return types.User{}, errors.New(errors.ErrUserNotFound, "user not found")
		}
		return types.User{}, errors.Wrap(err, "error getting user by username")
	}
	return user, nil
}

func (s *service) CreateAuction(ctx context.Context, auction types.Auction) (types.Auction, error) {
	query := `
        INSERT INTO auctions (title, description, starting_price, current_price, auction_end_time, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING auction_id, title, description, starting_price, current_price, auction_end_time, created_by
    `
	var created types.Auction
	err := s.db.QueryRowContext(ctx, query,
		auction.Title,
		auction.Description,
		auction.StartingPrice,
		auction.CurrentPrice,
		auction.EndTime,
		auction.CreatedBy,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.StartingPrice,
		&created.CurrentPrice,
		&created.EndTime,
		&created.CreatedBy,
	)
	if err != nil {
		return types.Auction{}, errors.Wrap(err, "error creating auction")
	}
	return created, nil
}

func (s *service) GetActiveAuctions(ctx context.Context) ([]types.Auction, error) {
	query := `
        SELECT auction_id, title, description, starting_price, current_price, auction_end_time, created_by
        FROM auctions
        WHERE auction_end_time > now()
    `
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "error getting active auctions")
	}
	defer rows.Close()

	var auctions []types.Auction
	for rows.Next() {
		var auction types.Auction
		err := rows.Scan(
			&auction.ID,
			&auction.Title,
			&auction.Description,
			&auction.StartingPrice,
			&auction.CurrentPrice,
			&auction.EndTime,
			&auction.CreatedBy,
		)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning auction")
		}
		auctions = append(auctions, auction)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating over auctions")
	}
	return auctions, nil
}

func (s *service) GetAuctionByID(ctx context.Context, auctionID int) (types.Auction, error) {
	query := `
        SELECT auction_id, title, description, starting_price, current_price, auction_end_time, created_by
        FROM auctions
        WHERE auction_id = $1
    `
	var auction types.Auction
	err := s.db.QueryRowContext(ctx, query, auctionID).Scan(
		&auction.ID,
		&auction.Title,
		&auction.Description,
		&auction.StartingPrice,
		&auction.CurrentPrice,
		&auction.EndTime,
		&auction.CreatedBy,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return types.Auction{}, errors.New(errors.ErrAuctionNotFound, "auction not found")
		}
		return types.Auction{}, errors.Wrap(err, "error getting auction by id")
	}
	return auction, nil
}

func (s *service) CreateItem(ctx context.Context, item types.Item) (types.Item, error) {
	query := `
        INSERT INTO items (auction_id, name, description, current_price, starting_bid, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING item_id, auction_id, name, description, current_price, starting_bid, image_url
    `
	var created types.Item
	err := s.db.QueryRowContext(ctx, query,
		item.AuctionID,
		item.Name,
		item.Description,
		item.CurrentPrice,
		item.StartingBid,
		item.ImageURL,
	).Scan(
		&created.ID,
		&created.AuctionID,
		&created.Name,
		&created.Description,
		&created.CurrentPrice,
		&created.StartingBid,
		&created.ImageURL,
	)
	if err != nil {
		return types.Item{}, errors.Wrap(err, "error creating item")
	}
	return created, nil
}

func (s *service) GetItemsByAuction(ctx context.Context, auctionID int) ([]types.Item, error) {
	query := `
        SELECT item_id, auction_id, name, description, current_price, starting_bid, image_url
        FROM items
        WHERE auction_id = $1
    `
	rows, err := s.db.QueryContext(ctx, query, auctionID)
	if err != nil {
		return nil, errors.Wrap(err, "error getting items by auction")
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var item types.Item
		err := rows.Scan(
			&item.ID,
			&item.AuctionID,
			&item.Name,
			&item.Description,
			&item.CurrentPrice,
			&item.StartingBid,
			&item.ImageURL,
		)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning item")
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating over items")
	}
	return items, nil
}

func (s *service) GetItemByID(ctx context.Context, itemID int) (types.Item, error) {
	query := `
        SELECT item_id, auction_id, name, description, current_price, starting_bid, image_url
        FROM items
        WHERE item_id = $1
    `
	var item types.Item
	err := s.db.QueryRowContext(ctx, query, itemID).Scan(
		&item.ID,
		&item.AuctionID,
		&item.Name,
		&item.Description,
		&item.CurrentPrice,
		&item.StartingBid,
		&item.ImageURL,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return types.Item{}, errors.New(errors.ErrItemNotFound, "item not found")
		}
		return types.Item{}, errors.Wrap(err, "error getting item by id")
	}
	return item, nil
}

// CreateBid appends a bid row outside of any transaction. The item's current
// price is not touched; bid placement goes through the transactional path.
func (s *service) CreateBid(ctx context.Context, bid types.Bid) (types.Bid, error) {
	query := `
        INSERT INTO bids (item_id, user_id, bid_amount)
        VALUES ($1, $2, $3)
        RETURNING bid_id, item_id, user_id, bid_amount, created_at
    `
	var created types.Bid
	err := s.db.QueryRowContext(ctx, query, bid.ItemID, bid.UserID, bid.Amount).Scan(
		&created.ID,
		&created.ItemID,
		&created.UserID,
		&created.Amount,
		&created.CreatedAt,
	)
	if err != nil {
		return types.Bid{}, errors.Wrap(err, "error creating bid")
	}
	return created, nil
}

func (s *service) GetUserBids(ctx context.Context, userID int) ([]types.UserBid, error) {
	query := `
        SELECT b.bid_id, a.title, i.name, b.bid_amount
        FROM bids b
        JOIN items i ON b.item_id = i.item_id
        JOIN auctions a ON i.auction_id = a.auction_id
        WHERE b.user_id = $1
    `
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.Wrap(err, "error getting user bids")
	}
	defer rows.Close()

	var bids []types.UserBid
	for rows.Next() {
		var bid types.UserBid
		if err := rows.Scan(&bid.BidID, &bid.AuctionTitle, &bid.ItemName, &bid.Amount); err != nil {
			return nil, errors.Wrap(err, "error scanning user bid")
		}
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating over user bids")
	}
	return bids, nil
}

func (s *service) DeleteBid(ctx context.Context, bidID int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bids WHERE bid_id = $1`, bidID)
	if err != nil {
		return errors.Wrap(err, "error deleting bid")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error deleting bid")
	}
	if affected == 0 {
		return errors.New(errors.ErrBidNotFound, "bid not found")
	}
	return nil
}

func (s *service) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return errors.Wrap(err, "error starting transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("Error rolling back transaction: ", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "error committing transaction")
	}
	return nil
}

// GetItemForUpdateTx retrieves an item within a transaction, locking its row
// until the transaction ends. Concurrent bidders serialize here.
func (s *service) GetItemForUpdateTx(ctx context.Context, tx *sql.Tx, itemID int) (types.Item, error) {
	query := `
        SELECT item_id, auction_id, name, description, current_price, starting_bid, image_url
        FROM items
        WHERE item_id = $1 FOR UPDATE
    `
	var item types.Item
	err := tx.QueryRowContext(ctx, query, itemID).Scan(
		&item.ID,
		&item.AuctionID,
		&item.Name,
		&item.Description,
		&item.CurrentPrice,
		&item.StartingBid,
		&item.ImageURL,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return types.Item{}, errors.New(errors.ErrItemNotFound, "item not found")
		}
		return types.Item{}, errors.Wrap(err, "error getting item for update in tx")
	}
	return item, nil
}

// UpdateItemPriceTx sets the item's current price within a transaction.
func (s *service) UpdateItemPriceTx(ctx context.Context, tx *sql.Tx, itemID int, price float64) (types.Item, error) {
	query := `
        UPDATE items
        SET current_price = $1
        WHERE item_id = $2
        RETURNING item_id, auction_id, name, description, current_price, starting_bid, image_url
    `
	var item types.Item
	err := tx.QueryRowContext(ctx, query, price, itemID).Scan(
		&item.ID,
		&item.AuctionID,
		&item.Name,
		&item.Description,
		&item.CurrentPrice,
		&item.StartingBid,
		&item.ImageURL,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return types.Item{}, errors.New(errors.ErrItemNotFound, "item not found")
		}
		return types.Item{}, errors.Wrap(err, "error updating item price in tx")
	}

	log.Debugf("Item %d updated with new price: %v", item.ID, price)

	return item, nil
}

// CreateBidTx appends a bid row within a transaction.
func (s *service) CreateBidTx(ctx context.Context, tx *sql.Tx, bid types.Bid) (types.Bid, error) {
	query := `
        INSERT INTO bids (item_id, user_id, bid_amount)
        VALUES ($1, $2, $3)
        RETURNING bid_id, item_id, user_id, bid_amount, created_at
    `
	var created types.Bid
	err := tx.QueryRowContext(ctx, query, bid.ItemID, bid.UserID, bid.Amount).Scan(
		&created.ID,
		&created.ItemID,
		&created.UserID,
		&created.Amount,
		&created.CreatedAt,
	)
	if err != nil {
		return types.Bid{}, errors.Wrap(err, "error creating bid in tx")
	}
	return created, nil
}
