package dialect

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xml:lang="en-us">
  <title>Test Atom Feed</title>
  <subtitle>Atom subtitle</subtitle>
  <link rel="self" href="https://example.com/feed.atom"/>
  <link href="https://example.com"/>
  <updated>2023-07-03T12:00:00Z</updated>
  <generator>Hugo</generator>
  <author>
    <name>Test Author</name>
  </author>
  <id>urn:uuid:feed</id>
  <entry>
    <title>First Entry</title>
    <link href="https://example.com/entry1"/>
    <id>urn:uuid:entry-1</id>
    <updated>2023-07-03T10:00:00Z</updated>
  </entry>
  <entry>
    <title>Second Entry</title>
    <link href="https://example.com/entry2"/>
    <id>urn:uuid:entry-2</id>
    <updated>2023-07-03T11:00:00Z</updated>
  </entry>
  <entry>
    <title>Third Entry</title>
    <link href="https://example.com/entry3"/>
    <updated>2023-07-03T12:00:00Z</updated>
  </entry>
</feed>`

const legacyAtomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed version="0.3" xmlns="http://purl.org/atom/ns#">
  <title>Legacy Feed</title>
  <tagline>Legacy tagline</tagline>
  <modified>2004-12-13T18:30:02Z</modified>
  <entry>
    <title>Legacy Entry</title>
    <link rel="alternate" type="text/html" href="https://example.com/legacy"/>
    <id>tag:example.com,2004:legacy-1</id>
    <modified>2004-12-13T18:30:02Z</modified>
  </entry>
</feed>`

const rss1Feed = `<?xml version="1.0"?>
<rdf:RDF
  xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
  xmlns:dc="http://purl.org/dc/elements/1.1/"
  xmlns="http://purl.org/rss/1.0/">
  <channel rdf:about="https://example.com/rss1">
    <title>RSS1 Feed</title>
    <link>https://example.com</link>
    <description>RSS1 description</description>
    <dc:language>en-gb</dc:language>
    <dc:date>2023-07-03T12:00:00Z</dc:date>
    <dc:creator>Channel Author</dc:creator>
  </channel>
  <item rdf:about="https://example.com/rss1/one">
    <title>RSS1 Item One</title>
    <link>https://example.com/rss1/one</link>
    <dc:creator>Item Author</dc:creator>
  </item>
  <item>
    <title>RSS1 Item Two</title>
    <link>https://example.com/rss1/two</link>
  </item>
</rdf:RDF>`

const rss09Feed = `<?xml version="1.0"?>
<rdf:RDF
  xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
  xmlns="http://my.netscape.com/rdf/simple/0.9/">
  <channel>
    <title>RSS09 Feed</title>
    <link>https://example.com</link>
    <description>RSS09 description</description>
  </channel>
  <item>
    <title>RSS09 Item</title>
    <link>https://example.com/rss09/one</link>
  </item>
</rdf:RDF>`

const rss2Feed = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <language>en-us</language>
    <lastBuildDate>Mon, 03 Jul 2023 12:00:00 GMT</lastBuildDate>
    <generator>WordPress</generator>
    <managingEditor>editor@example.com (Editor)</managingEditor>
    <ttl>60</ttl>
    <item>
      <title>Test Item 1</title>
      <link>https://example.com/item1</link>
      <description>Test Item 1 Description</description>
      <guid>item-1</guid>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
      <category>Technology</category>
    </item>
    <item>
      <title>Test Item 2</title>
      <link>https://example.com/item2</link>
      <description>Test Item 2 Description</description>
    </item>
  </channel>
</rss>`

const prefixedAtomFeed = `<?xml version="1.0" encoding="utf-8"?>
<a:feed xmlns:a="http://www.w3.org/2005/Atom" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <a:title>Prefixed Feed</a:title>
  <a:id>urn:uuid:prefixed</a:id>
  <a:entry>
    <a:title>Prefixed Entry</a:title>
    <a:link href="https://example.com/prefixed/1"/>
    <a:id>urn:uuid:prefixed-1</a:id>
    <a:updated>2023-07-03T10:00:00Z</a:updated>
    <dc:creator>Prefixed Author</dc:creator>
  </a:entry>
  <a:entry xmlns:a="http://www.w3.org/2005/Atom">
    <a:title>Redeclared Entry</a:title>
    <a:id>urn:uuid:prefixed-2</a:id>
    <a:content type="xhtml"><div xmlns="http://www.w3.org/1999/xhtml"><p>Body</p></div></a:content>
  </a:entry>
</a:feed>`

const prefixedRSS1Feed = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:r="http://purl.org/rss/1.0/">
  <r:channel rdf:about="https://example.com/">
    <r:title>Prefixed RDF</r:title>
    <r:link>https://example.com/</r:link>
  </r:channel>
  <r:item rdf:about="https://example.com/r/1">
    <r:title>RDF Item</r:title>
    <r:link>https://example.com/r/1</r:link>
  </r:item>
</rdf:RDF>`

const inheritedContextFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xml:base="http://example.com/" xml:lang="de">
  <title>Relative Links</title>
  <entry>
    <title>Relative</title>
    <id>urn:uuid:relative-1</id>
    <link href="rel/1"/>
  </entry>
</feed>`

const nestedBaseRSS1Feed = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/" xml:base="http://example.com/">
  <channel rdf:about="http://example.com/" xml:base="blog/" xml:lang="fr">
    <title>Nested</title>
    <link>http://example.com/blog/</link>
    <item rdf:about="http://example.com/blog/1">
      <title>Nested Item</title>
      <link>http://example.com/blog/1</link>
    </item>
  </channel>
</rdf:RDF>`
